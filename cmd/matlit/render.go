package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matlit/matrix"
)

// yamlView is the YAML rendering of a matrix: logical rows, not storage.
type yamlView struct {
	Rows int         `yaml:"rows"`
	Cols int         `yaml:"cols"`
	Data [][]float64 `yaml:"data,flow"`
}

func render(w io.Writer, format string, m *matrix.Dense[float64]) error {
	switch format {
	case formatYAML:
		view := yamlView{Rows: m.Rows(), Cols: m.Cols(), Data: make([][]float64, m.Rows())}
		for i := range view.Data {
			row, err := m.Row(i)
			if err != nil {
				return err
			}
			view.Data[i] = row
		}
		out, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("failed to marshal matrix: %w", err)
		}
		_, err = w.Write(out)
		return err
	case formatRaw:
		_, err := fmt.Fprintln(w, m.Data())
		return err
	default:
		_, err := fmt.Fprintf(w, "%dx%d\n%s", m.Rows(), m.Cols(), m.String())
		return err
	}
}
