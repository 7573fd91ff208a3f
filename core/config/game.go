package config

// GameConfig locates the install a session opens.
type GameConfig struct {
	// RomFS is the data filesystem root (a directory, or a prefix inside the bucket).
	RomFS string `mapstructure:"romfs" default:""`
	// ExeFS is the code filesystem root. Optional.
	ExeFS string `mapstructure:"exefs" default:""`
	// Version is the installed title tag (gg, swsh).
	Version string `mapstructure:"version" default:"gg"`
	// Language is the index of the active language folder.
	Language int `mapstructure:"language" default:"2"`
}
