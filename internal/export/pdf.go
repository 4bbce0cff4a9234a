/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// PDFOptions controls the reference card export.
// Built-in Helvetica keeps text vector without font embedding.
type PDFOptions struct {
	Title string // document title, defaults to "CubeMenu reference"
}

// ExportReferencePDF writes ref as a printable reference card at outPath.
func ExportReferencePDF(ref Reference, outPath string, opt PDFOptions) error {
	title := opt.Title
	if title == "" {
		title = "CubeMenu reference"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAuthor("CubeMenu", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(ref.Workbenches) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 8, "No menus configured.", "", 1, "L", false, 0, "")
	}

	for _, wb := range ref.Workbenches {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, wb.Name, "B", 1, "L", false, 0, "")
		pdf.Ln(1)
		for _, m := range wb.Menus {
			name := m.Name
			if m.Default {
				name += " (default)"
			}
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(6, 7, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%s  [%s]", name, m.Scope), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, e := range m.Entries {
				pdf.CellFormat(12, 5.5, "", "", 0, "L", false, 0, "")
				switch {
				case e.Separator:
					pdf.CellFormat(0, 5.5, "----------------", "", 1, "L", false, 0, "")
				case e.Submenu:
					pdf.CellFormat(0, 5.5, "> "+e.Label, "", 1, "L", false, 0, "")
				default:
					pdf.CellFormat(0, 5.5, e.Label, "", 1, "L", false, 0, "")
				}
			}
			pdf.Ln(1.5)
		}
		pdf.Ln(2)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
