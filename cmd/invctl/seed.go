package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/freshstock-api/internal/application/auth"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

func seedCmd(e *env) *cobra.Command {
	var (
		fixtures string
		charset  string
		force    bool
		hash     bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Escribe los datos de demostración (o un YAML de fixtures) en el almacenamiento",
		Long: `Sin --fixtures escribe los datos de demostración con vencimientos relativos a hoy.
Si ya existe un documento solo se reemplaza con --force.
Con --hash-passwords las contraseñas en texto plano se guardan como hash bcrypt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := e.ctx(cmd)
			exists, err := e.handle.Exists(ctx)
			if err != nil {
				return err
			}
			if exists && !force {
				return errors.New("ya existe un documento; use --force para reemplazarlo")
			}

			var doc *entity.Document
			if fixtures != "" {
				f, err := os.Open(fixtures)
				if err != nil {
					return err
				}
				defer f.Close()
				if doc, err = document.LoadFixtures(f, charset); err != nil {
					return fmt.Errorf("%s: %w", fixtures, err)
				}
			} else {
				doc = document.Default(e.now())
			}

			if hash {
				if err := hashPasswords(doc); err != nil {
					return err
				}
			}

			if err := e.handle.Store.Save(ctx, doc); err != nil {
				return err
			}
			e.log.Info().
				Str("store", e.handle.Driver).
				Int("products", len(doc.Products)).
				Int("suppliers", len(doc.Suppliers)).
				Int("orders", len(doc.Orders)).
				Bool("replaced", exists).
				Msg("documento sembrado")
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products, %d suppliers, %d orders\n",
				len(doc.Products), len(doc.Suppliers), len(doc.Orders))
			return nil
		},
	}
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "Archivo YAML con el documento semilla")
	cmd.Flags().StringVar(&charset, "charset", document.CharsetUTF8, "Codificación del YAML (utf-8 | iso-8859-1)")
	cmd.Flags().BoolVar(&force, "force", false, "Reemplazar el documento existente")
	cmd.Flags().BoolVar(&hash, "hash-passwords", false, "Guardar las contraseñas como hash bcrypt")
	return cmd
}

func hashPasswords(doc *entity.Document) error {
	for i := range doc.Users {
		if auth.IsHashed(doc.Users[i].Password) {
			continue
		}
		h, err := auth.HashPassword(doc.Users[i].Password)
		if err != nil {
			return fmt.Errorf("hash de %s: %w", doc.Users[i].Username, err)
		}
		doc.Users[i].Password = h
	}
	return nil
}
