package repository

import "context"

// KeyValueStore puerto del almacén clave-valor donde se guardan la configuración de cobro
// y la caché del estado de caja, ambas como JSON bajo una clave fija.
type KeyValueStore interface {
	// Get devuelve el valor y found=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete no falla si la clave no existe.
	Delete(ctx context.Context, key string) error
}
