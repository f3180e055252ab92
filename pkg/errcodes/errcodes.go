package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError   failure.ErrorCode = "InternalServerError"
	NotFound              failure.ErrorCode = "NotFound"
	ValidationError       failure.ErrorCode = "ValidationError"
	InvalidConfig         failure.ErrorCode = "InvalidConfig"
	DatasetNotFound       failure.ErrorCode = "DatasetNotFound"
	InvalidDataset        failure.ErrorCode = "InvalidDataset"
	EntryDocumentNotFound failure.ErrorCode = "EntryDocumentNotFound"
	InvalidEntryDocument  failure.ErrorCode = "InvalidEntryDocument"
)
