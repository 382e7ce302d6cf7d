package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/freshstock-api/internal/application/export"
	infrapdf "github.com/jhoicas/freshstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/xmlexport"
)

func exportCmd(e *env) *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export-po <order-id>",
		Short: "Genera el PDF o XML de una orden de compra",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("order-id inválido %q", args[0])
			}
			uc := export.NewOrderExportUseCase(e.handle.Store, infrapdf.NewMarotoPDFGenerator(), xmlexport.NewOrderXMLBuilder())

			var (
				body     []byte
				filename string
			)
			switch format {
			case "pdf":
				body, filename, err = uc.OrderPDF(e.ctx(cmd), id)
			case "xml":
				body, filename, err = uc.OrderXML(e.ctx(cmd), id)
			default:
				return fmt.Errorf("formato %q no soportado (pdf | xml)", format)
			}
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(outDir, filename)
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pdf", "pdf | xml")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directorio de salida")
	return cmd
}
