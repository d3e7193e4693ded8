package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

var templateOutput string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a sample input workbook",
	Long: `Write an Excel workbook with the expected header row and two example
loads: a 6 kN/m UDL over the first 15 m and a 10 kN point load at
x = 7.5 m.`,
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "girder-input.xlsx", "Output workbook path")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)"},
		{"UDL", 6.0, nil, 0.0, 15.0},
		{"Point", 10.0, 7.5, nil, nil},
	}
	for ri, row := range rows {
		for ci, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(templateOutput); err != nil {
		return err
	}
	fmt.Printf("Template written to %s\n", templateOutput)
	return nil
}
