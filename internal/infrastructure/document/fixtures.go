package document

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// Charsets admitidos por LoadFixtures.
const (
	CharsetUTF8   = "utf-8"
	CharsetLatin1 = "iso-8859-1"
)

// LoadFixtures lee un documento semilla alternativo en YAML. Las hojas de cálculo
// exportadas desde sistemas antiguos suelen venir en Latin-1; charset vacío asume UTF-8.
func LoadFixtures(r io.Reader, charset string) (*entity.Document, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "_", "-")) {
	case "", CharsetUTF8, "utf8":
	case CharsetLatin1, "iso8859-1", "latin1", "latin-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado %q: %w", charset, domain.ErrInvalidInput)
	}

	var doc entity.Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("fixtures vacías: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("decodificar fixtures: %v: %w", err, domain.ErrInvalidInput)
	}
	doc.Normalize()
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate revisa las invariantes del documento completo: ids únicos por colección,
// entidades válidas y referencias de órdenes y ventas a productos y proveedores existentes.
func Validate(doc *entity.Document) error {
	if err := doc.Settings.Validate(); err != nil {
		return invalid("settings", err)
	}
	userIDs, usernames := ids{}, map[string]bool{}
	for _, u := range doc.Users {
		if err := userIDs.add(u.ID); err != nil {
			return invalid("users", err)
		}
		if usernames[u.Username] {
			return invalid("users", fmt.Errorf("username duplicado %q", u.Username))
		}
		usernames[u.Username] = true
	}
	products := ids{}
	for _, p := range doc.Products {
		if err := products.add(p.ID); err != nil {
			return invalid("products", err)
		}
		if err := p.Validate(); err != nil {
			return invalid("products", err)
		}
	}
	suppliers := ids{}
	for _, s := range doc.Suppliers {
		if err := suppliers.add(s.ID); err != nil {
			return invalid("suppliers", err)
		}
		if err := s.Validate(); err != nil {
			return invalid("suppliers", err)
		}
	}
	orders := ids{}
	for _, o := range doc.Orders {
		if err := orders.add(o.ID); err != nil {
			return invalid("orders", err)
		}
		if !o.Status.Valid() {
			return invalid("orders", fmt.Errorf("estado inválido %q", o.Status))
		}
		if !suppliers[o.SupplierID] {
			return invalid("orders", fmt.Errorf("orden %d: proveedor %d inexistente", o.ID, o.SupplierID))
		}
		if err := entity.ValidateItems(o.Items); err != nil {
			return invalid("orders", err)
		}
		for _, it := range o.Items {
			if !products[it.ProductID] {
				return invalid("orders", fmt.Errorf("orden %d: producto %d inexistente", o.ID, it.ProductID))
			}
		}
	}
	sales := ids{}
	for _, s := range doc.Sales {
		if err := sales.add(s.ID); err != nil {
			return invalid("sales", err)
		}
		if s.Quantity <= 0 {
			return invalid("sales", fmt.Errorf("venta %d con cantidad %d", s.ID, s.Quantity))
		}
		if !products[s.ProductID] {
			return invalid("sales", fmt.Errorf("venta %d: producto %d inexistente", s.ID, s.ProductID))
		}
	}
	activities := ids{}
	for _, a := range doc.Activities {
		if err := activities.add(a.ID); err != nil {
			return invalid("activities", err)
		}
	}
	return nil
}

// ids conjunto de identificadores ya vistos en una colección.
type ids map[int]bool

func (s ids) add(id int) error {
	if id <= 0 {
		return fmt.Errorf("id inválido %d", id)
	}
	if s[id] {
		return fmt.Errorf("id duplicado %d", id)
	}
	s[id] = true
	return nil
}

func invalid(section string, err error) error {
	return fmt.Errorf("%s: %v: %w", section, err, domain.ErrInvalidInput)
}
