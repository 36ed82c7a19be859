package content

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/treygoff24/site/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

const (
	essaysSubdir     = "essays"
	notesSubdir      = "notes"
	appearancesFile  = "appearances.yaml"
	booksFile        = "books.yaml"
	markdownFileGlob = "*.md"
)

// Store holds the full content collection, loaded once at startup and
// read-only thereafter. No entity is mutated during a request.
type Store struct {
	essays      []models.Essay
	notes       []models.Note
	books       []models.Book
	appearances []models.Appearance
	topics      []string
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Load reads the content directory: essays and notes as Markdown files
// with YAML frontmatter, appearances and books as YAML data files.
// Essays and notes come back sorted by date descending. Any malformed
// file fails the whole load.
func Load(dir string, processor *Processor) (*Store, error) {
	store := &Store{}

	essays, err := loadEssays(filepath.Join(dir, essaysSubdir), processor)
	if err != nil {
		return nil, fmt.Errorf("failed to load essays: %w", err)
	}
	store.essays = essays

	notes, err := loadNotes(filepath.Join(dir, notesSubdir), processor)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	store.notes = notes

	appearances, err := LoadAppearancesFile(filepath.Join(dir, appearancesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load appearances: %w", err)
	}
	store.appearances = appearances

	books, err := loadBooksFile(filepath.Join(dir, booksFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	store.books = books

	store.topics = collectTopics(store.essays, store.notes)

	log.Printf("INFO (ContentStore): loaded %d essays, %d notes, %d appearances, %d books",
		len(store.essays), len(store.notes), len(store.appearances), len(store.books))
	return store, nil
}

func loadEssays(dir string, processor *Processor) ([]models.Essay, error) {
	files, err := filepath.Glob(filepath.Join(dir, markdownFileGlob))
	if err != nil {
		return nil, err
	}

	essays := make([]models.Essay, 0, len(files))
	for _, file := range files {
		fm, body, err := loadMarkdownFile(file, processor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		status := models.ContentStatus(fm.meta.Status)
		if status == "" {
			status = models.ContentStatusPublished
		}
		if status != models.ContentStatusDraft && status != models.ContentStatusPublished {
			return nil, fmt.Errorf("%s: unknown status %q", file, fm.meta.Status)
		}

		essays = append(essays, models.Essay{
			Slug:     fm.slug,
			Title:    fm.meta.Title,
			Date:     fm.meta.Date,
			Status:   status,
			Topics:   fm.meta.Topics,
			BodyHTML: body.HTML,
			Excerpt:  body.Excerpt,
		})
	}

	sort.SliceStable(essays, func(i, j int) bool {
		return essays[i].Date.After(essays[j].Date)
	})
	return essays, nil
}

func loadNotes(dir string, processor *Processor) ([]models.Note, error) {
	files, err := filepath.Glob(filepath.Join(dir, markdownFileGlob))
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(files))
	for _, file := range files {
		fm, body, err := loadMarkdownFile(file, processor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		notes = append(notes, models.Note{
			Slug:     fm.slug,
			Title:    fm.meta.Title,
			Date:     fm.meta.Date,
			Topics:   fm.meta.Topics,
			BodyHTML: body.HTML,
			Excerpt:  body.Excerpt,
		})
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})
	return notes, nil
}

type loadedMeta struct {
	meta frontmatter
	slug string
}

func loadMarkdownFile(file string, processor *Processor) (loadedMeta, *ProcessedBody, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return loadedMeta{}, nil, err
	}

	meta, rawBody, err := splitFrontmatter(data)
	if err != nil {
		return loadedMeta{}, nil, err
	}
	if meta.Title == "" {
		return loadedMeta{}, nil, fmt.Errorf("missing title in frontmatter")
	}
	if meta.Date.IsZero() {
		return loadedMeta{}, nil, fmt.Errorf("missing date in frontmatter")
	}

	slug := meta.Slug
	if slug == "" {
		slug = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	var rendered bytes.Buffer
	if err := markdown.Convert(rawBody, &rendered); err != nil {
		return loadedMeta{}, nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	body, err := processor.Process(rendered.String())
	if err != nil {
		return loadedMeta{}, nil, fmt.Errorf("failed to process body: %w", err)
	}

	return loadedMeta{meta: meta, slug: slug}, body, nil
}

// LoadAppearancesFile reads and validates the appearance collection.
// IDs must be unique and types must belong to the closed set; any
// violation fails the load. Used by both the server and covergen.
func LoadAppearancesFile(path string) ([]models.Appearance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var appearances []models.Appearance
	if err := yaml.Unmarshal(data, &appearances); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(appearances))
	for i, app := range appearances {
		if app.ID == "" {
			return nil, fmt.Errorf("%s: appearance %d has no id", path, i)
		}
		if _, dup := seen[app.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate appearance id %q", path, app.ID)
		}
		seen[app.ID] = struct{}{}

		if !app.Type.IsValid() {
			return nil, fmt.Errorf("%s: appearance %q has unknown type %q", path, app.ID, app.Type)
		}
		if app.URL == "" {
			return nil, fmt.Errorf("%s: appearance %q has no url", path, app.ID)
		}
	}

	sort.SliceStable(appearances, func(i, j int) bool {
		return appearances[i].Date.After(appearances[j].Date)
	})
	return appearances, nil
}

func loadBooksFile(path string) ([]models.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Book{}, nil
		}
		return nil, err
	}

	var books []models.Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i := range books {
		if books[i].ID == "" {
			books[i].ID = uuid.NewString()
		}
		if books[i].Title == "" {
			return nil, fmt.Errorf("%s: book %d has no title", path, i)
		}
	}
	return books, nil
}

func collectTopics(essays []models.Essay, notes []models.Note) []string {
	set := make(map[string]struct{})
	for _, e := range essays {
		for _, t := range e.Topics {
			set[t] = struct{}{}
		}
	}
	for _, n := range notes {
		for _, t := range n.Topics {
			set[t] = struct{}{}
		}
	}

	topics := make([]string, 0, len(set))
	for t := range set {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Essays returns essays sorted by date descending. Drafts are
// included only when includeDrafts is true.
func (s *Store) Essays(includeDrafts bool) []models.Essay {
	if includeDrafts {
		return s.essays
	}
	published := make([]models.Essay, 0, len(s.essays))
	for _, e := range s.essays {
		if !e.IsDraft() {
			published = append(published, e)
		}
	}
	return published
}

// EssayBySlug finds an essay by slug, honoring the draft filter.
func (s *Store) EssayBySlug(slug string, includeDrafts bool) (models.Essay, bool) {
	for _, e := range s.essays {
		if e.Slug == slug {
			if e.IsDraft() && !includeDrafts {
				return models.Essay{}, false
			}
			return e, true
		}
	}
	return models.Essay{}, false
}

// Notes returns all notes sorted by date descending.
func (s *Store) Notes() []models.Note { return s.notes }

// Books returns all library entries.
func (s *Store) Books() []models.Book { return s.books }

// Appearances returns all appearances sorted by date descending.
func (s *Store) Appearances() []models.Appearance { return s.appearances }

// FeaturedAppearances returns the curated subset.
func (s *Store) FeaturedAppearances() []models.Appearance {
	featured := make([]models.Appearance, 0, len(s.appearances))
	for _, a := range s.appearances {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	return featured
}

// AppearanceByID finds an appearance by its stable identifier.
func (s *Store) AppearanceByID(id string) (models.Appearance, bool) {
	for _, a := range s.appearances {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appearance{}, false
}

// Topics returns the sorted union of essay and note topics.
func (s *Store) Topics() []string { return s.topics }
