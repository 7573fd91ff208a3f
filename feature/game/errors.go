package game

import (
	"errors"

	"gamedata-manager/core/container"
	"gamedata-manager/core/datacache"
)

var (
	// ErrUnsupportedFileKind is returned when a FileID has no mapping for the active Version.
	ErrUnsupportedFileKind = errors.New("unsupported file kind")
	// ErrUnknownLanguage is returned for language indices the Version does not ship.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrNotFolder is returned when a filtered resolution targets a non-folder file.
	ErrNotFolder = errors.New("file is not a folder")
	// ErrUnknownText is returned when a text name has no file for the active Version.
	ErrUnknownText = errors.New("unknown text")
	// ErrUnknownVersion is returned for unsupported version tags.
	ErrUnknownVersion = errors.New("unknown game version")

	// ErrMaterializationFailed matches failures to parse a container into a structure.
	ErrMaterializationFailed = datacache.ErrMaterializationFailed
	// ErrPersistFailed matches failures to serialize a structure or write a container.
	ErrPersistFailed = datacache.ErrPersistFailed
	// ErrFolderNotInitialized matches folder member access before the filter step.
	ErrFolderNotInitialized = container.ErrFolderNotInitialized
)
