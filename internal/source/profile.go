package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/grit-analytics/opportunity-map/internal/catalog"
	"github.com/grit-analytics/opportunity-map/internal/model"
)

// Profile column names as published in the county opportunity profile.
const (
	colTract            = "CensusTract"
	colGEOID            = "GEOID"
	colScore            = "PWC_Opportunity_Index"
	colTier             = "Opportunity_Tier"
	colTopDomain        = "Top_Domain"
	colDistrict         = "District"
	colDistrictCombined = "District_combined"
	colNeighborhood     = "Neighborhood"
	colFirstDue         = "1st Due"
)

// Profile is the decoded tabular input: one RawAreaRow per source record
// plus the column names observed in the header.
type Profile struct {
	Rows    []model.RawAreaRow
	Columns []string
}

// ReadProfile loads the opportunity profile from a CSV or XLSX file,
// dispatching on the file extension.
func ReadProfile(ctx context.Context, path string, cat *catalog.Catalog) (*Profile, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = ReadXLSX(path, XLSXOptions{})
	case ".csv":
		rows, err = readCSVFile(ctx, path)
	default:
		return nil, eris.Errorf("profile: unsupported input format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, eris.Errorf("profile: %s is empty", path)
	}

	return parseProfile(rows[0], rows[1:], cat)
}

// readCSVFile reads an entire CSV file through the streaming parser.
func readCSVFile(ctx context.Context, path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "profile: open %s", path)
	}
	defer func() { _ = f.Close() }()

	headerCh := make(chan []string, 1)
	rowCh, errCh := StreamCSV(ctx, f, CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		TrimSpace: true,
	})

	var body [][]string
	for row := range rowCh {
		body = append(body, row)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}

	// The header is buffered on its channel before any row is sent, so by
	// the time the row channel closes it is ready (or the file was empty).
	select {
	case header := <-headerCh:
		return append([][]string{header}, body...), nil
	default:
		return nil, nil
	}
}

// parseProfile converts raw string records into RawAreaRows. Records with a
// blank area identifier or an unparseable composite score are skipped and
// counted; everything else degrades per-field.
func parseProfile(header []string, records [][]string, cat *catalog.Catalog) (*Profile, error) {
	log := zap.L().With(zap.String("component", "source.profile"))

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	idCol := colTract
	if _, ok := idx[idCol]; !ok {
		if _, ok := idx[colGEOID]; !ok {
			return nil, eris.Errorf("profile: neither %q nor %q column present", colTract, colGEOID)
		}
		idCol = colGEOID
	}
	if _, ok := idx[colScore]; !ok {
		return nil, eris.Errorf("profile: required column %q missing", colScore)
	}

	field := func(record []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []model.RawAreaRow
	var skipped int

	for _, record := range records {
		geoid := field(record, idCol)
		if geoid == "" {
			skipped++
			continue
		}

		score, err := strconv.ParseFloat(field(record, colScore), 64)
		if err != nil {
			skipped++
			continue
		}

		row := model.RawAreaRow{
			GEOID:            geoid,
			Score:            score,
			Tier:             field(record, colTier),
			TopDomain:        field(record, colTopDomain),
			District:         field(record, colDistrict),
			DistrictCombined: field(record, colDistrictCombined),
			Neighborhood:     field(record, colNeighborhood),
			FirstDue:         field(record, colFirstDue),
			Values:           make(map[string]float64),
			DomainRanks:      make(map[string]int),
			DomainVars:       make(map[string][]string),
		}

		for _, key := range catalog.RankedSourceDomains() {
			if v := field(record, key+"_Rank"); v != "" {
				if rank, err := strconv.ParseFloat(v, 64); err == nil {
					row.DomainRanks[key] = int(rank)
				}
			}
			for i := 1; i <= 3; i++ {
				if v := field(record, fmt.Sprintf("%s_Var%d", key, i)); v != "" {
					row.DomainVars[key] = append(row.DomainVars[key], v)
				}
			}
		}

		for col := range idx {
			if !cat.Has(col) {
				continue
			}
			if v := field(record, col); v != "" {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					row.Values[col] = f
				}
			}
		}

		rows = append(rows, row)
	}

	if skipped > 0 {
		log.Warn("profile: skipped malformed records", zap.Int("skipped", skipped))
	}
	log.Info("profile loaded",
		zap.Int("rows", len(rows)),
		zap.Int("columns", len(header)),
	)

	return &Profile{Rows: rows, Columns: header}, nil
}
