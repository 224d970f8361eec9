package service

import (
	"context"
	"fmt"
	"time"

	"kiosko/internal/apierror"
	"kiosko/internal/config"
	"kiosko/internal/dto"
	"kiosko/internal/infra"
	"kiosko/internal/model"
	"kiosko/internal/report"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReporteService computes the dashboard and reporting views from the in-memory
// collections. All aggregation math lives in internal/report; this layer only
// gathers inputs and shapes responses.
type ReporteService interface {
	Resumen(ctx context.Context) (*dto.ResumenResponse, error)
	FlujoCaja(ctx context.Context, filtro dto.RangoFilter) (*dto.FlujoCajaResponse, error)
	TopProductos(ctx context.Context, filtro dto.RangoFilter) (*dto.RankingResponse, error)
	TopClientes(ctx context.Context, filtro dto.RangoFilter) (*dto.RankingResponse, error)
	ReporteVentas(ctx context.Context, filtro dto.VentasFilter) (*dto.ReporteVentasResponse, error)
	GenerarPDF(ctx context.Context, filtro dto.VentasFilter) (string, error)
	EnviarPorEmail(ctx context.Context, req dto.EnviarReporteRequest) error
}

type reporteService struct {
	caches  *Caches
	resumen *ResumenCache
	conf    ConfiguracionService
	mailer  *infra.Mailer
	cfg     *config.Config
}

func NewReporteService(caches *Caches, resumen *ResumenCache, conf ConfiguracionService, mailer *infra.Mailer, cfg *config.Config) ReporteService {
	return &reporteService{caches: caches, resumen: resumen, conf: conf, mailer: mailer, cfg: cfg}
}

// Resumen is all-time and backed by the redis summary cache when available.
func (s *reporteService) Resumen(ctx context.Context) (*dto.ResumenResponse, error) {
	var cached dto.ResumenResponse
	if s.resumen.Get(ctx, &cached) {
		return &cached, nil
	}

	idx := report.IndexarProductos(s.caches.Productos.Lista())
	r := report.CalcularResumen(
		s.caches.Deudas.Lista(),
		s.caches.Egresos.Lista(),
		idx,
		s.caches.Clientes.Len(),
		s.conf.InversionInicial(),
	)
	resp := &dto.ResumenResponse{
		DineroRecibido:  r.DineroRecibido,
		DineroPendiente: r.DineroPendiente,
		SaldoActual:     r.SaldoActual,
		GastosTotales:   r.GastosTotales,
		VentasTotales:   r.VentasTotales,
		DeudasActivas:   r.DeudasActivas,
		BaseClientes:    r.BaseClientes,
	}
	s.resumen.Set(ctx, resp)
	return resp, nil
}

func (s *reporteService) FlujoCaja(_ context.Context, filtro dto.RangoFilter) (*dto.FlujoCajaResponse, error) {
	rango := report.ResolverRango(report.Modo(filtro.Rango), filtro.Desde, filtro.Hasta, time.Now())
	idx := report.IndexarProductos(s.caches.Productos.Lista())
	puntos := report.FlujoCaja(s.caches.Deudas.Lista(), s.caches.Egresos.Lista(), idx, rango)

	resp := &dto.FlujoCajaResponse{
		Desde:  rango.Desde.Format("2006-01-02"),
		Hasta:  rango.Hasta.Format("2006-01-02"),
		Puntos: make([]dto.FlujoCajaPunto, 0, len(puntos)),
	}
	for _, p := range puntos {
		resp.Puntos = append(resp.Puntos, dto.FlujoCajaPunto{Fecha: p.Fecha, Ventas: p.Ventas, Egresos: p.Egresos})
	}
	return resp, nil
}

func (s *reporteService) TopProductos(_ context.Context, filtro dto.RangoFilter) (*dto.RankingResponse, error) {
	rango := report.ResolverRango(report.Modo(filtro.Rango), filtro.Desde, filtro.Hasta, time.Now())
	idx := report.IndexarProductos(s.caches.Productos.Lista())
	return aRanking(report.TopProductos(s.caches.Deudas.Lista(), idx, rango)), nil
}

func (s *reporteService) TopClientes(_ context.Context, filtro dto.RangoFilter) (*dto.RankingResponse, error) {
	rango := report.ResolverRango(report.Modo(filtro.Rango), filtro.Desde, filtro.Hasta, time.Now())
	idxP := report.IndexarProductos(s.caches.Productos.Lista())
	idxC := report.IndexarClientes(s.caches.Clientes.Lista())
	return aRanking(report.TopClientes(s.caches.Deudas.Lista(), idxP, idxC, rango)), nil
}

// ReporteVentas totals each sale from its stored snapshot prices, unlike the
// live-priced debts list.
func (s *reporteService) ReporteVentas(_ context.Context, filtro dto.VentasFilter) (*dto.ReporteVentasResponse, error) {
	idx := report.IndexarProductos(s.caches.Productos.Lista())

	resp := &dto.ReporteVentasResponse{
		TotalPotencial:  decimal.Zero,
		DineroRecibido:  decimal.Zero,
		DineroPendiente: decimal.Zero,
		Ventas:          []dto.VentaReporteRow{},
	}
	for _, d := range s.caches.Deudas.Lista() {
		if filtro.Fecha != "" && d.Fecha.Format("2006-01-02") != filtro.Fecha {
			continue
		}
		if filtro.Usuario != "" && d.Usuario != filtro.Usuario {
			continue
		}

		total := report.TotalDeudaSnapshot(d)
		resp.TotalPotencial = resp.TotalPotencial.Add(total)
		resp.VentasTotales++
		if d.Pagada {
			resp.DineroRecibido = resp.DineroRecibido.Add(total)
			resp.VentasPagadas++
		} else {
			resp.DineroPendiente = resp.DineroPendiente.Add(total)
			resp.VentasPendientes++
		}
		resp.Ventas = append(resp.Ventas, s.aVentaRow(d, idx, total))
	}
	return resp, nil
}

func (s *reporteService) GenerarPDF(ctx context.Context, filtro dto.VentasFilter) (string, error) {
	reporte, err := s.ReporteVentas(ctx, filtro)
	if err != nil {
		return "", err
	}
	path, err := infra.GenerarReportePDF(reporte, s.cfg.NombreNegocio, s.cfg.PDFStoragePath)
	if err != nil {
		return "", apierror.Store("Error al generar el PDF del reporte", err)
	}
	return path, nil
}

func (s *reporteService) EnviarPorEmail(ctx context.Context, req dto.EnviarReporteRequest) error {
	path, err := s.GenerarPDF(ctx, dto.VentasFilter{Fecha: req.Fecha, Usuario: req.Usuario})
	if err != nil {
		return err
	}

	asunto := fmt.Sprintf("Reporte de ventas - %s", s.cfg.NombreNegocio)
	cuerpo := "Adjunto encontrarás el reporte de ventas solicitado."
	if err := s.mailer.SendReporte(req.Destinatario, asunto, cuerpo, path); err != nil {
		log.Error().Err(err).Str("destinatario", req.Destinatario).Msg("fallo el envío del reporte por correo")
		return apierror.Store("Error al enviar el reporte por correo electrónico", err)
	}
	log.Info().Str("destinatario", req.Destinatario).Msg("reporte de ventas enviado")
	return nil
}

func (s *reporteService) aVentaRow(d model.Deuda, idx map[uuid.UUID]model.Producto, total decimal.Decimal) dto.VentaReporteRow {
	row := dto.VentaReporteRow{
		ID:      d.ID.String(),
		Fecha:   d.Fecha.Format("2006-01-02"),
		Usuario: d.Usuario,
		Total:   total,
		Pagada:  d.Pagada,
	}
	if d.ClienteID != nil {
		if c, ok := s.caches.Clientes.Obtener(d.ClienteID.String()); ok {
			row.Cliente = c.Nombre
		}
	}
	if row.Cliente == "" {
		row.Cliente = report.Desconocido
	}
	for _, item := range d.Items {
		nombre := report.Desconocido
		if p, ok := idx[item.ProductoID]; ok {
			nombre = p.Nombre
		}
		row.Items = append(row.Items, dto.ItemDeudaResponse{
			ProductoID: item.ProductoID.String(),
			Producto:   nombre,
			Cantidad:   item.Cantidad,
			Precio:     item.Precio,
		})
	}
	return row
}

func aRanking(entradas []report.Entrada) *dto.RankingResponse {
	resp := &dto.RankingResponse{Entradas: make([]dto.RankingEntry, 0, len(entradas))}
	for _, e := range entradas {
		resp.Entradas = append(resp.Entradas, dto.RankingEntry{Nombre: e.Nombre, Valor: e.Valor})
	}
	return resp
}
