package nomina

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"opergest/internal/storage"
)

type NominaStorage interface {
	GetEmpleado(ctx context.Context, id int64) (*storage.Empleado, error)
	GetReportesPeriodo(ctx context.Context, empleadoID int64, desde, hasta time.Time) ([]*storage.Reporte, error)
	GetOperaciones(ctx context.Context) ([]*storage.Operacion, error)
	GetHorasPeriodo(ctx context.Context, empleadoID int64, desde, hasta time.Time) ([]*storage.RegistroHora, error)
}

type NominaService struct {
	storage NominaStorage
}

func NewNominaService(storage NominaStorage) *NominaService {
	return &NominaService{storage: storage}
}

// Linea es un renglón del reporte de nómina: una tarea terminada (costura)
// o un día de reloj (horas).
type Linea struct {
	Fecha    time.Time `json:"fecha"`
	Concepto string    `json:"concepto"`
	Talla    int       `json:"talla,omitempty"`
	Bandos   int       `json:"bandos,omitempty"`
	Precio   float64   `json:"precio,omitempty"`
	Horas    float64   `json:"horas,omitempty"`
	// Incompleta marca un día de reloj sin salida: suma 0 horas y la UI
	// tiene que avisarlo, no sumarlo como completo.
	Incompleta bool    `json:"incompleta,omitempty"`
	Total      float64 `json:"total"`
}

type ReporteNomina struct {
	Empleado int64     `json:"empleado"`
	Nombre   string    `json:"nombre"`
	Area     string    `json:"area"`
	Inicio   time.Time `json:"inicio"`
	Fin      time.Time `json:"fin"`
	Lineas   []Linea   `json:"lineas"`
	Total    float64   `json:"total"`
}

// ReportePara arma el reporte quincenal de un empleado: resuelve su área,
// deriva la quincena de la fecha de referencia y suma tareas terminadas
// (costura) u horas de reloj según corresponda.
func (s *NominaService) ReportePara(ctx context.Context, empleadoID int64, ref time.Time) (*ReporteNomina, error) {
	const op = "service.nomina.ReportePara"

	empleado, err := s.storage.GetEmpleado(ctx, empleadoID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	inicio, fin := Periodo(ref)

	reporte := &ReporteNomina{
		Empleado: empleado.ID,
		Nombre:   empleado.Nombre,
		Area:     empleado.Area,
		Inicio:   inicio,
		Fin:      fin,
		Lineas:   []Linea{},
	}

	if empleado.Area == storage.AreaCostura {
		if err := s.lineasCostura(ctx, reporte); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if err := s.lineasHoras(ctx, reporte, empleado.TarifaHora); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	for _, l := range reporte.Lineas {
		reporte.Total += l.Total
	}

	return reporte, nil
}

func (s *NominaService) lineasCostura(ctx context.Context, reporte *ReporteNomina) error {
	var (
		reportes    []*storage.Reporte
		operaciones []*storage.Operacion
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reportes, err = s.storage.GetReportesPeriodo(gCtx, reporte.Empleado, reporte.Inicio, reporte.Fin)
		if err != nil {
			return fmt.Errorf("reportes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		operaciones, err = s.storage.GetOperaciones(gCtx)
		if err != nil {
			return fmt.Errorf("operaciones: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	porID := make(map[int64]*storage.Operacion, len(operaciones))
	for _, operacion := range operaciones {
		porID[operacion.ID] = operacion
	}

	for _, r := range reportes {
		operacion, ok := porID[r.Operacion]
		if !ok {
			return fmt.Errorf("reporte id=%d operación id=%d: %w", r.ID, r.Operacion, storage.ErrOperacionNotFound)
		}

		precio := operacion.PrecioPara(r.Talla)
		reporte.Lineas = append(reporte.Lineas, Linea{
			Fecha:    r.CompletedAt,
			Concepto: operacion.Nombre,
			Talla:    r.Talla,
			Bandos:   r.NumBandos,
			Precio:   precio,
			Total:    precio * float64(r.NumBandos),
		})
	}

	return nil
}

func (s *NominaService) lineasHoras(ctx context.Context, reporte *ReporteNomina, tarifa float64) error {
	registros, err := s.storage.GetHorasPeriodo(ctx, reporte.Empleado, reporte.Inicio, reporte.Fin)
	if err != nil {
		return fmt.Errorf("horas: %w", err)
	}

	for _, r := range registros {
		linea := Linea{
			Fecha:    r.Entrada,
			Concepto: "horas " + r.Fecha,
		}

		if r.Salida == nil {
			// sin salida: no se paga, se marca
			linea.Incompleta = true
		} else {
			// el turno empieza y termina el mismo día
			linea.Horas = r.Salida.Sub(r.Entrada).Hours()
			linea.Total = linea.Horas * tarifa
		}

		reporte.Lineas = append(reporte.Lineas, linea)
	}

	return nil
}
