package catalog

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/repository"
	"github.com/xuri/excelize/v2"
)

// File is the JSON layout of a catalog: languages in display order, each
// with its phrases in study order.
type File struct {
	Languages []LanguageRecord `json:"languages"`
}

type LanguageRecord struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Flag    string          `json:"flag"`
	Phrases []models.Phrase `json:"phrases"`
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	Languages      int
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// Tabular imports (CSV and XLSX) read a header row with the columns
// language_code, language_name, flag, id, english, translation,
// pronunciation, example and difficulty. Only language_code, english,
// translation and difficulty are required.
var requiredColumns = []string{"language_code", "english", "translation", "difficulty"}

var validate = validator.New()

// Importer loads catalog content into the repositories.
type Importer struct {
	languages repository.LanguageRepository
	phrases   repository.PhraseRepository
}

func NewImporter(languages repository.LanguageRepository, phrases repository.PhraseRepository) *Importer {
	return &Importer{languages: languages, phrases: phrases}
}

// ImportFile picks a reader by extension: .json, .csv, or .xlsx.
func (im *Importer) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")
	log.Info("importing catalog file: %s", path)

	var (
		file *File
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		file, err = readJSONFile(path)
	case ".csv":
		file, err = readCSVFile(path)
	case ".xlsx", ".xlsm":
		file, err = readExcelFile(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return im.Import(ctx, file)
}

// Import validates every record and upserts the valid ones. Invalid or
// duplicate phrases are skipped and reported; a storage failure aborts.
func (im *Importer) Import(ctx context.Context, file *File) (*ImportResult, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")
	result := &ImportResult{Errors: make([]string, 0)}

	for _, rec := range file.Languages {
		lang := models.Language{Code: strings.TrimSpace(rec.Code), Name: strings.TrimSpace(rec.Name), Flag: rec.Flag}
		if lang.Name == "" {
			lang.Name = strings.ToUpper(lang.Code)
		}
		if err := validate.Struct(lang); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("language %q: %v", rec.Code, err))
			result.Skipped += len(rec.Phrases)
			result.TotalProcessed += len(rec.Phrases)
			continue
		}
		if err := im.languages.Upsert(ctx, lang); err != nil {
			return nil, fmt.Errorf("upsert language %s: %w", lang.Code, err)
		}
		result.Languages++

		seen := make(map[string]bool, len(rec.Phrases))
		batch := make([]models.Phrase, 0, len(rec.Phrases))
		for i, p := range rec.Phrases {
			result.TotalProcessed++
			p = normalizePhrase(p, lang.Code, i)
			if err := validate.Struct(p); err != nil {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("%s phrase %d (%s): %v", lang.Code, i+1, p.ID, err))
				continue
			}
			if seen[p.ID] {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("%s phrase %d: duplicate id %s", lang.Code, i+1, p.ID))
				continue
			}
			seen[p.ID] = true
			batch = append(batch, p)
		}
		if len(batch) == 0 {
			continue
		}

		created, updated, err := im.phrases.UpsertBatch(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("upsert phrases for %s: %w", lang.Code, err)
		}
		result.Created += created
		result.Updated += updated
	}

	log.Info("catalog import finished: languages=%d processed=%d created=%d updated=%d skipped=%d",
		result.Languages, result.TotalProcessed, result.Created, result.Updated, result.Skipped)
	return result, nil
}

func normalizePhrase(p models.Phrase, code string, index int) models.Phrase {
	p.LanguageCode = code
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = fmt.Sprintf("%s-%d", code, index+1)
	}
	p.English = strings.TrimSpace(p.English)
	p.Translation = strings.TrimSpace(p.Translation)
	p.Pronunciation = strings.TrimSpace(p.Pronunciation)
	p.Example = strings.TrimSpace(p.Example)
	p.Difficulty = models.Difficulty(strings.ToLower(strings.TrimSpace(string(p.Difficulty))))
	return p
}

func readJSONFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open JSON file: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadJSON decodes a catalog in the File layout.
func ReadJSON(r io.Reader) (*File, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &file, nil
}

func readCSVFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads one phrase per row under a header row.
func ReadCSV(r io.Reader) (*File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return fromRows(rows)
}

func readExcelFile(path string) (*File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return fromRows(rows)
}

// fromRows groups tabular rows by language, keeping first-seen order for
// both languages and phrases.
func fromRows(rows [][]string) (*File, error) {
	if len(rows) == 0 {
		return &File{}, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	missing := lo.Filter(requiredColumns, func(col string, _ int) bool {
		_, ok := index[col]
		return !ok
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	file := &File{}
	byCode := map[string]*LanguageRecord{}
	order := []string{}
	for _, row := range rows[1:] {
		nonEmpty := lo.Filter(row, func(v string, _ int) bool { return strings.TrimSpace(v) != "" })
		if len(nonEmpty) == 0 {
			continue
		}
		code := cell(row, "language_code")
		rec, ok := byCode[code]
		if !ok {
			rec = &LanguageRecord{Code: code}
			byCode[code] = rec
			order = append(order, code)
		}
		if name := cell(row, "language_name"); name != "" && rec.Name == "" {
			rec.Name = name
		}
		if flag := cell(row, "flag"); flag != "" && rec.Flag == "" {
			rec.Flag = flag
		}
		rec.Phrases = append(rec.Phrases, models.Phrase{
			ID:            cell(row, "id"),
			English:       cell(row, "english"),
			Translation:   cell(row, "translation"),
			Pronunciation: cell(row, "pronunciation"),
			Example:       cell(row, "example"),
			Difficulty:    models.Difficulty(cell(row, "difficulty")),
		})
	}
	for _, code := range order {
		file.Languages = append(file.Languages, *byCode[code])
	}
	return file, nil
}
