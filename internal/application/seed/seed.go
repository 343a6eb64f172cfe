// Package seed carga datos iniciales desde un archivo YAML usando los mismos casos de uso que la API.
//
// Formato: una sección por entidad (roles, users, offices, employees, clients, product_lines,
// products, orders, order_details, payments), cada una con una lista de registros con los mismos
// campos que el JSON de la API. El campo id es local al archivo: sirve para que otros registros
// lo referencien (role_id, office_id, boss_id, ...) y se traduce al id generado por la base.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/application/usecase"
)

// Fixtures registros leídos del YAML, agrupados por sección.
type Fixtures map[string][]map[string]any

// dateFields campos de fecha de las entidades.
var dateFields = map[string]bool{
	"order_date":    true,
	"expected_date": true,
	"delivery_date": true,
	"payment_date":  true,
}

// Summary cantidad de registros insertados por sección.
type Summary map[string]int

// section describe cómo insertar una sección y qué campos referencian a otras.
type section struct {
	name   string
	refs   map[string]string // campo -> sección referenciada
	create func(ctx context.Context, raw []byte) (int64, error)
}

// Decoder devuelve el decodificador para el charset indicado ("" o "utf8" no transforma).
func Decoder(charset string) (transform.Transformer, error) {
	switch strings.ToLower(strings.ReplaceAll(charset, "-", "")) {
	case "", "utf8":
		return nil, nil
	case "latin1", "iso88591":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("seed: charset no soportado: %q", charset)
}

// Parse lee el YAML, convirtiendo a UTF-8 si charset no lo es.
func Parse(r io.Reader, charset string) (Fixtures, error) {
	t, err := Decoder(charset)
	if err != nil {
		return nil, err
	}
	if t != nil {
		r = transform.NewReader(r, t)
	}
	var fx Fixtures
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil {
		if err == io.EOF {
			return Fixtures{}, nil
		}
		return nil, fmt.Errorf("seed: yaml: %w", err)
	}
	known := make(map[string]bool)
	for _, s := range sections(nil) {
		known[s.name] = true
	}
	for name := range fx {
		if !known[name] {
			return nil, fmt.Errorf("seed: sección desconocida %q", name)
		}
	}
	return fx, nil
}

// Loader inserta fixtures en orden de dependencias.
type Loader struct {
	services *usecase.Services
}

// NewLoader construye el cargador.
func NewLoader(services *usecase.Services) *Loader {
	return &Loader{services: services}
}

// Load inserta todas las secciones. Se detiene en el primer error; lo ya insertado queda confirmado.
func (l *Loader) Load(ctx context.Context, fx Fixtures) (Summary, error) {
	ids := make(map[string]map[int64]int64)
	summary := make(Summary)

	for _, s := range sections(l.services) {
		ids[s.name] = make(map[int64]int64)
		for i, rec := range fx[s.name] {
			localID, err := asInt64(rec["id"])
			if err != nil {
				return summary, fmt.Errorf("seed: %s[%d].id: %w", s.name, i, err)
			}
			raw, err := encode(rec, s.refs, ids)
			if err != nil {
				return summary, fmt.Errorf("seed: %s[%d]: %w", s.name, i, err)
			}
			newID, err := s.create(ctx, raw)
			if err != nil {
				return summary, fmt.Errorf("seed: %s[%d]: %w", s.name, i, err)
			}
			if localID != 0 {
				ids[s.name][localID] = newID
			}
			summary[s.name]++
		}
	}
	return summary, nil
}

func sections(s *usecase.Services) []section {
	if s == nil {
		s = &usecase.Services{}
	}
	return []section{
		{name: "roles", create: creator(s.Roles)},
		{name: "users", refs: map[string]string{"role_id": "roles"}, create: creator(s.Users)},
		{name: "offices", create: creator(s.Offices)},
		{name: "employees", refs: map[string]string{"office_id": "offices", "boss_id": "employees"}, create: creator(s.Employees)},
		{name: "clients", refs: map[string]string{"sales_rep_id": "employees"}, create: creator(s.Clients)},
		{name: "product_lines", create: creator(s.ProductLines)},
		{name: "products", refs: map[string]string{"product_line_id": "product_lines"}, create: creator(s.Products)},
		{name: "orders", refs: map[string]string{"client_id": "clients"}, create: creator(s.Orders)},
		{name: "order_details", refs: map[string]string{"order_id": "orders", "product_id": "products"}, create: creator(s.OrderDetails)},
		{name: "payments", refs: map[string]string{"client_id": "clients"}, create: creator(s.Payments)},
	}
}

func creator[E any, D dto.Identified](uc *usecase.CrudUseCase[E, D]) func(ctx context.Context, raw []byte) (int64, error) {
	return func(ctx context.Context, raw []byte) (int64, error) {
		var in D
		if err := json.Unmarshal(raw, &in); err != nil {
			return 0, err
		}
		out, err := uc.Create(ctx, in)
		if err != nil {
			return 0, err
		}
		return (*out).Identifier(), nil
	}
}

// encode traduce las referencias a ids reales y serializa el registro como JSON de la API.
func encode(rec map[string]any, refs map[string]string, ids map[string]map[int64]int64) ([]byte, error) {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
		switch val := v.(type) {
		case time.Time:
			if dateFields[k] {
				out[k] = val.Format(time.RFC3339)
			} else {
				// Texto libre que YAML interpretó como fecha: se conserva como se escribió.
				out[k] = val.Format(time.DateOnly)
			}
		case string:
			// En los campos de fecha se acepta la fecha sin hora (2024-03-01).
			if dateFields[k] {
				if d, err := time.Parse(time.DateOnly, val); err == nil {
					out[k] = d.Format(time.RFC3339)
				}
			}
		}
	}
	delete(out, "id")

	for field, target := range refs {
		v, ok := rec[field]
		if !ok || v == nil {
			continue
		}
		local, err := asInt64(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		mapped, ok := ids[target][local]
		if !ok {
			return nil, fmt.Errorf("%s: referencia %d a %s no definida antes en el archivo", field, local, target)
		}
		out[field] = mapped
	}
	return json.Marshal(out)
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("id no entero: %v", n)
		}
		return int64(n), nil
	}
	return 0, fmt.Errorf("id inválido: %v", v)
}
