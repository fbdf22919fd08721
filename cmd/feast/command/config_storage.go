package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-feast/internal/game"
	"github.com/pixil98/go-feast/internal/storage"
)

type StorageConfig struct {
	Rooms     AssetConfig[*game.Room]      `json:"rooms"`
	Things    AssetConfig[*game.Thing]     `json:"things"`
	Scoring   AssetConfig[*game.ScoreRule] `json:"scoring"`
	Scenarios AssetConfig[*game.Scenario]  `json:"scenarios"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	things, err := c.Things.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating thing store: %w", err)
	}
	scoring, err := c.Scoring.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scoring store: %w", err)
	}
	scenarios, err := c.Scenarios.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scenario store: %w", err)
	}

	dict := &game.Dictionary{
		Rooms:     rooms,
		Things:    things,
		Scoring:   scoring,
		Scenarios: scenarios,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Things.Validate("things"))
	el.Add(c.Scoring.Validate("scoring"))
	el.Add(c.Scenarios.Validate("scenarios"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
