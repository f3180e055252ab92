package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Header dumps only: the server never receives request bodies.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^(Authorization: ).+?(\r?)$`),
	regexp.MustCompile(`(?im)^(Proxy-Authorization: ).+?(\r?)$`),
	regexp.MustCompile(`(?im)^(Cookie: ).+?(\r?)$`),
	regexp.MustCompile(`(?im)^(Set-Cookie: ).+?(\r?)$`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
