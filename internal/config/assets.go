package config

// Assets are the two static roots: the data artifact and the compiled page.
// Paths are relative to the working directory.
type Assets struct {
	DataDir     string `env:"STATIC_DATA_DIR" envDefault:"dist/sc2ladder.json" validate:"required"`
	AppDir      string `env:"STATIC_APP_DIR" envDefault:"dist/sc2ladder" validate:"required"`
	DatasetFile string `env:"DATASET_FILE" envDefault:"players.json" validate:"required"`
	PageTitle   string `env:"PAGE_TITLE" envDefault:"SC2 Ladder"`
}
