package checks

import (
	"context"
	"errors"
	"fmt"

	"gamedata-manager/core/storage"
	"gamedata-manager/feature/game"
)

const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

// LayoutReport strictly types the result of an install layout check.
type LayoutReport struct {
	Version  string       `json:"version"`
	Language int          `json:"language"`
	Matched  bool         `json:"matched"`
	Files    []FileReport `json:"files"`
	Missing  []string     `json:"missing"`
}

// FileReport is the state of one mapped file.
type FileReport struct {
	File    string `json:"file"`
	Root    string `json:"root"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Members int    `json:"members,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CheckLayout verifies that every file mapped for the install's version
// exists. Folders must hold at least one file. Files on an unconfigured
// ExeFS are skipped.
func CheckLayout(ctx context.Context, open storage.Opener, loc game.Location, language int) (*LayoutReport, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	paths, err := game.MappedPaths(loc.Version, language)
	if err != nil {
		return nil, err
	}

	report := &LayoutReport{
		Version:  loc.Version.String(),
		Language: language,
		Matched:  true,
		Files:    make([]FileReport, 0, len(paths)),
		Missing:  []string{},
	}

	stores := make(map[string]storage.Store)
	storeErrs := make(map[string]error)

	for _, mp := range paths {
		fr := FileReport{
			File: mp.File.String(),
			Root: mp.Root,
			Path: mp.Path,
			Kind: mp.Kind,
		}

		root := loc.RomFS
		if mp.Root == "exefs" {
			root = loc.ExeFS
		}
		if root == "" {
			fr.Status = StatusSkipped
			report.Files = append(report.Files, fr)
			continue
		}

		store, ok := stores[mp.Root]
		if !ok && storeErrs[mp.Root] == nil {
			store, err = open(root)
			if err != nil {
				storeErrs[mp.Root] = err
			} else {
				stores[mp.Root] = store
			}
		}

		if openErr := storeErrs[mp.Root]; openErr != nil {
			fr.Status = StatusError
			fr.Error = fmt.Sprintf("open %s: %v", mp.Root, openErr)
		} else {
			checkFile(ctx, store, &fr)
		}

		if fr.Status != StatusOK {
			report.Matched = false
			report.Missing = append(report.Missing, fr.File)
		}
		report.Files = append(report.Files, fr)
	}

	return report, nil
}

func checkFile(ctx context.Context, store storage.Store, fr *FileReport) {
	if fr.Kind == "folder" {
		names, err := store.ReadDir(ctx, fr.Path)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			fr.Status = StatusMissing
		case err != nil:
			fr.Status = StatusError
			fr.Error = err.Error()
		default:
			fr.Status = StatusOK
			fr.Members = len(names)
		}
		return
	}

	exists, err := store.Exists(ctx, fr.Path)
	switch {
	case err != nil:
		fr.Status = StatusError
		fr.Error = err.Error()
	case !exists:
		fr.Status = StatusMissing
	default:
		fr.Status = StatusOK
	}
}
