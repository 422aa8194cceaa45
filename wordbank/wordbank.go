// Package wordbank holds the phonics category table and builds per-round word sets
package wordbank

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownCategory is returned for a category id missing from the bank
	ErrUnknownCategory = errors.New("unknown category")
	// ErrEmptyCategory is returned for a category with no words
	ErrEmptyCategory = errors.New("category has no words")
)

//go:embed categories.yaml
var defaultCategories []byte

// Category is an immutable named word list
type Category struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Words []string `yaml:"words"`
}

type categoryFile struct {
	Categories []Category `yaml:"categories"`
}

// Bank is the ordered category table, read-only after load
type Bank struct {
	categories []Category
	byID       map[string]int
}

// Load parses a YAML category table
func Load(r io.Reader) (*Bank, error) {
	var file categoryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return New(file.Categories)
}

// LoadFile parses the category table at path
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open categories: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in nine categories
func Default() (*Bank, error) {
	var file categoryFile
	if err := yaml.Unmarshal(defaultCategories, &file); err != nil {
		return nil, fmt.Errorf("decode built-in categories: %w", err)
	}
	return New(file.Categories)
}

// New builds a bank from categories in display order
// Ids must be unique and non-empty; empty word lists are allowed and rejected at round setup
func New(categories []Category) (*Bank, error) {
	b := &Bank{
		categories: make([]Category, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		if c.ID == "" {
			return nil, errors.New("category with empty id")
		}
		if _, dup := b.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.ID)
		}
		c.Words = append([]string(nil), c.Words...)
		b.byID[c.ID] = len(b.categories)
		b.categories = append(b.categories, c)
	}
	return b, nil
}

// Categories returns the categories in display order
func (b *Bank) Categories() []Category {
	out := make([]Category, len(b.categories))
	for i, c := range b.categories {
		c.Words = append([]string(nil), c.Words...)
		out[i] = c
	}
	return out
}

// Category looks up a category by id
func (b *Bank) Category(id string) (Category, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Category{}, false
	}
	c := b.categories[i]
	c.Words = append([]string(nil), c.Words...)
	return c, true
}

// DistractorsFor samples up to count unique words from every category other than categoryID
// Words are collected in category order, deduplicated, Fisher-Yates shuffled and truncated
// An unknown id excludes nothing; fewer candidates than count returns them all
func (b *Bank) DistractorsFor(categoryID string, count int, rng *rand.Rand) []string {
	if count <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var pool []string
	for _, c := range b.categories {
		if c.ID == categoryID {
			continue
		}
		for _, w := range c.Words {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
	}

	for i := len(pool) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}
