package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// ProcessFile is the YAML/JSON envelope of a process list.
type ProcessFile struct {
	Processes []sim.Process `yaml:"processes" json:"processes"`
}

// CSV column names. Column order is free; priority may be omitted.
const (
	colID       = "id"
	colArrival  = "arrival"
	colBurst    = "burst"
	colPriority = "priority"
)

// LoadProcessesFile loads a process list, choosing the format by extension:
// .csv, .yaml/.yml or .json.
func LoadProcessesFile(path string) ([]sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadProcessesCSV(f)
	case ".yaml", ".yml":
		return LoadProcessesYAML(f)
	case ".json":
		return LoadProcessesJSON(f)
	default:
		return nil, fmt.Errorf("unsupported process file extension %q (want .csv, .yaml, .yml or .json)", ext)
	}
}

// LoadProcessesCSV reads a header-led CSV with columns id, arrival, burst and
// optionally priority.
func LoadProcessesCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("reading CSV: missing header row")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colID, colArrival, colBurst} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("reading CSV: column %q not in header %v", required, records[0])
		}
	}
	priorityIdx, hasPriority := header[colPriority]

	processes := make([]sim.Process, 0, len(records)-1)
	for n, record := range records[1:] {
		line := n + 2
		field := func(col string, idx int) (int, error) {
			v, err := strconv.Atoi(strings.TrimSpace(record[idx]))
			if err != nil {
				return 0, fmt.Errorf("reading CSV line %d: column %q: %w", line, col, err)
			}
			return v, nil
		}
		var p sim.Process
		if p.ID, err = field(colID, header[colID]); err != nil {
			return nil, err
		}
		if p.Arrival, err = field(colArrival, header[colArrival]); err != nil {
			return nil, err
		}
		if p.Burst, err = field(colBurst, header[colBurst]); err != nil {
			return nil, err
		}
		if hasPriority {
			if p.Priority, err = field(colPriority, priorityIdx); err != nil {
				return nil, err
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// LoadProcessesYAML reads a `processes:` list. Unknown fields are rejected.
func LoadProcessesYAML(r io.Reader) ([]sim.Process, error) {
	var file ProcessFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML process file: %w", err)
	}
	return file.Processes, nil
}

// LoadProcessesJSON reads a {"processes": [...]} document. Unknown fields are rejected.
func LoadProcessesJSON(r io.Reader) ([]sim.Process, error) {
	var file ProcessFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing JSON process file: %w", err)
	}
	return file.Processes, nil
}

// WriteProcessesCSV writes processes in the format LoadProcessesCSV reads.
func WriteProcessesCSV(w io.Writer, processes []sim.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{colID, colArrival, colBurst, colPriority}); err != nil {
		return err
	}
	for _, p := range processes {
		row := []string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Priority),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
