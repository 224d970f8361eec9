package service

import (
	"context"
	"encoding/json"
	"time"

	"kiosko/internal/cache"
	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Caches are the in-memory mirrors of the store collections, bulk-loaded at
// startup and patched by the services after every successful write. All
// reads — lists and the whole reporting engine — are served from here.
type Caches struct {
	Clientes  *cache.Coleccion[model.Cliente]
	Productos *cache.Coleccion[model.Producto]
	Deudas    *cache.Coleccion[model.Deuda]
	Egresos   *cache.Coleccion[model.Egreso]
}

func NewCaches() *Caches {
	return &Caches{
		Clientes:  cache.New(func(c model.Cliente) string { return c.ID.String() }),
		Productos: cache.New(func(p model.Producto) string { return p.ID.String() }),
		Deudas:    cache.New(func(d model.Deuda) string { return d.ID.String() }),
		Egresos:   cache.New(func(e model.Egreso) string { return e.ID.String() }),
	}
}

// CargarTodo bulk-loads the four collections. Called once at startup; a
// failure here is fatal for the process.
func (c *Caches) CargarTodo(
	ctx context.Context,
	clientes repository.ClienteRepository,
	productos repository.ProductoRepository,
	deudas repository.DeudaRepository,
	egresos repository.EgresoRepository,
) error {
	cl, err := clientes.List(ctx)
	if err != nil {
		return err
	}
	pr, err := productos.List(ctx)
	if err != nil {
		return err
	}
	de, err := deudas.List(ctx)
	if err != nil {
		return err
	}
	eg, err := egresos.List(ctx)
	if err != nil {
		return err
	}

	c.Clientes.Cargar(cl)
	c.Productos.Cargar(pr)
	c.Deudas.Cargar(de)
	c.Egresos.Cargar(eg)

	log.Info().
		Int("clientes", c.Clientes.Len()).
		Int("productos", c.Productos.Len()).
		Int("deudas", c.Deudas.Len()).
		Int("egresos", c.Egresos.Len()).
		Msg("caches cargadas")
	return nil
}

// ─── Dashboard summary cache ──────────────────────────────────────────────────

const (
	resumenKey = "kiosko:reportes:resumen"
	resumenTTL = 60 * time.Second
)

// ResumenCache keeps the serialized dashboard summary in Redis for a short
// TTL, invalidated on every entity write. A nil client disables caching and
// every read recomputes.
type ResumenCache struct{ rdb *redis.Client }

func NewResumenCache(rdb *redis.Client) *ResumenCache { return &ResumenCache{rdb: rdb} }

func (rc *ResumenCache) Get(ctx context.Context, dest any) bool {
	if rc == nil || rc.rdb == nil {
		return false
	}
	raw, err := rc.rdb.Get(ctx, resumenKey).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (rc *ResumenCache) Set(ctx context.Context, v any) {
	if rc == nil || rc.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := rc.rdb.Set(ctx, resumenKey, raw, resumenTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("resumen cache set failed")
	}
}

// Invalidar drops the cached summary. Best-effort — a failure only means one
// stale read within the TTL.
func (rc *ResumenCache) Invalidar(ctx context.Context) {
	if rc == nil || rc.rdb == nil {
		return
	}
	if err := rc.rdb.Del(ctx, resumenKey).Err(); err != nil {
		log.Warn().Err(err).Msg("resumen cache invalidation failed")
	}
}
