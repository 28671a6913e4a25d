package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"campus-navigator/internal/config"
	"campus-navigator/internal/models"
	"campus-navigator/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	locationsFile := flag.String("locations", "", "Path to the locations CSV (name,category,x,y)")
	pathsFile := flag.String("paths", "", "Path to the paths CSV (from,to)")
	configDir := flag.String("config", "configs", "Directory containing app.yaml")
	flag.Parse()

	if *locationsFile == "" || *pathsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --locations and --paths flags are required")
		os.Exit(1)
	}

	if err := run(context.Background(), *locationsFile, *pathsFile, *configDir); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
}

func run(ctx context.Context, locationsFile, pathsFile, configDir string) error {
	locations, err := readFile(locationsFile, parseLocations)
	if err != nil {
		return fmt.Errorf("cannot parse locations %s: %w", locationsFile, err)
	}
	paths, err := readFile(pathsFile, parsePaths)
	if err != nil {
		return fmt.Errorf("cannot parse paths %s: %w", pathsFile, err)
	}
	log.Info().Int("locations", len(locations)).Int("paths", len(paths)).Msg("parsed input")

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if cfg.DBSource == "" {
		return errors.New("db_source is not configured")
	}

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("cannot connect to db: %w", err)
	}
	defer conn.Close(ctx)

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("cannot create schema: %w", err)
	}
	if _, err := repo.InsertLocations(ctx, locations); err != nil {
		return fmt.Errorf("cannot insert locations: %w", err)
	}
	if _, err := repo.InsertPaths(ctx, paths); err != nil {
		return fmt.Errorf("cannot insert paths: %w", err)
	}

	count, err := repo.CountLocations(ctx)
	if err != nil {
		return fmt.Errorf("cannot verify import: %w", err)
	}
	if count < len(locations) {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", len(locations), count)
	}

	log.Info().Int("locations", len(locations)).Int("paths", len(paths)).Msg("import complete")
	return nil
}

func readFile[T any](filePath string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parse(file)
}

// readRecords reads every row after the header, requiring at least minFields columns
func readRecords(r io.Reader, minFields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) < minFields {
			return nil, fmt.Errorf("invalid record length: %d, expected at least %d columns", len(record), minFields)
		}
		records = append(records, record)
	}
	return records, nil
}

// parseLocations returns one record per name. A repeated name replaces the
// earlier row in place, so the last record wins.
func parseLocations(r io.Reader) ([]models.Location, error) {
	records, err := readRecords(r, 4)
	if err != nil {
		return nil, err
	}

	locations := make([]models.Location, 0, len(records))
	index := make(map[string]int, len(records))
	for _, record := range records {
		x, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x coordinate: %s", record[2])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y coordinate: %s", record[3])
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, errors.New("location name cannot be empty")
		}
		location := models.Location{
			Name:     name,
			Category: strings.TrimSpace(record[1]),
			X:        x,
			Y:        y,
		}
		if i, ok := index[name]; ok {
			locations[i] = location
			continue
		}
		index[name] = len(locations)
		locations = append(locations, location)
	}
	return locations, nil
}

func parsePaths(r io.Reader) ([]models.Path, error) {
	records, err := readRecords(r, 2)
	if err != nil {
		return nil, err
	}

	paths := make([]models.Path, 0, len(records))
	for _, record := range records {
		paths = append(paths, models.Path{
			From: strings.TrimSpace(record[0]),
			To:   strings.TrimSpace(record[1]),
		})
	}
	return paths, nil
}
