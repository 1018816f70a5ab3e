package cli

import (
	"os"

	"github.com/openlayout/gridarb/pkg/layoutio"
)

// loadDocument reads a layout document from path. Both JSON documents and
// TOML manifests are accepted; the format is chosen by file extension.
func loadDocument(path string) (*layoutio.Document, error) {
	return layoutio.Import(path)
}

// saveDocument writes doc as JSON to the output path, or to stdout when
// output is empty.
func saveDocument(doc *layoutio.Document, output string) error {
	if output == "" {
		return layoutio.WriteJSON(doc, os.Stdout)
	}
	if err := layoutio.ExportJSON(doc, output); err != nil {
		return err
	}
	printSuccess("Wrote %s", StyleValue.Render(output))
	return nil
}
