// Package mapper contiene la tabla declarativa de conversiones Entity <-> DTO.
package mapper

// Profile par de funciones de conversión entre una entidad E y su DTO D.
//
// ToEntity recibe el id a asignar (0 en altas, el de la ruta en PUT) y la entidad
// almacenada actualmente (nil en altas), para conservar campos que el DTO no transporta.
type Profile[E any, D any] struct {
	ToDTO    func(e *E) D
	ToEntity func(id int64, in D, current *E) (*E, error)
}

// ToDTOs convierte una lista de entidades; nunca devuelve nil.
func (p Profile[E, D]) ToDTOs(items []*E) []D {
	out := make([]D, 0, len(items))
	for _, e := range items {
		out = append(out, p.ToDTO(e))
	}
	return out
}
