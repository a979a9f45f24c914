// Package analytics contiene el caso de uso del dashboard: totales por estado
// y la serie de ingresos de los últimos 6 meses.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

const (
	latestInvoicesCount = 5 // facturas recientes en el widget del dashboard
	revenueMonths       = 6 // meses de la serie de ingresos (mes actual incluido)
)

// DashboardUseCase arma el resumen del dashboard para un owner.
//
// Cuatro consultas independientes en paralelo: conteo de clientes, conteo de
// facturas, todas las facturas con cliente resuelto (insumo de totales y serie)
// y las 5 más recientes.
type DashboardUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		now:          time.Now,
	}
}

// GetSummary construye el dto.DashboardSummary del owner.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ownerID string) (*dto.DashboardSummary, error) {
	type countResult struct {
		n   int
		err error
	}
	type invoicesResult struct {
		invoices []*repository.InvoiceWithCustomer
		err      error
	}

	customerCh := make(chan countResult, 1)
	invoiceCh := make(chan countResult, 1)
	allCh := make(chan invoicesResult, 1)
	latestCh := make(chan invoicesResult, 1)

	go func() {
		n, err := uc.customerRepo.CountByOwner(ctx, ownerID)
		customerCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.invoiceRepo.CountByOwner(ctx, ownerID)
		invoiceCh <- countResult{n, err}
	}()
	go func() {
		invoices, err := uc.invoiceRepo.ListAllByOwner(ctx, ownerID)
		allCh <- invoicesResult{invoices, err}
	}()
	go func() {
		invoices, err := uc.invoiceRepo.ListLatest(ctx, ownerID, latestInvoicesCount)
		latestCh <- invoicesResult{invoices, err}
	}()

	customers := <-customerCh
	invoices := <-invoiceCh
	all := <-allCh
	latest := <-latestCh

	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de facturas: %w", invoices.err)
	}
	if all.err != nil {
		return nil, fmt.Errorf("dashboard: facturas del owner: %w", all.err)
	}
	if latest.err != nil {
		return nil, fmt.Errorf("dashboard: facturas recientes: %w", latest.err)
	}

	totalPaid, totalPending := Totals(all.invoices)

	latestOut := make([]dto.InvoiceResponse, 0, len(latest.invoices))
	for _, i := range latest.invoices {
		latestOut = append(latestOut, dto.NewInvoiceResponse(i))
	}

	return &dto.DashboardSummary{
		TotalPaid:      totalPaid,
		TotalPending:   totalPending,
		CustomerCount:  customers.n,
		InvoiceCount:   invoices.n,
		RevenueData:    RevenueSeries(all.invoices, uc.now()),
		LatestInvoices: latestOut,
	}, nil
}

// Totals suma los montos por estado: total pagado y total pendiente.
func Totals(invoices []*repository.InvoiceWithCustomer) (paid, pending decimal.Decimal) {
	for _, i := range invoices {
		switch i.Status {
		case entity.StatusPaid:
			paid = paid.Add(i.Amount)
		case entity.StatusPending:
			pending = pending.Add(i.Amount)
		}
	}
	return paid, pending
}

// RevenueSeries calcula la serie de ingresos de los últimos 6 meses calendario
// (el actual y los 5 anteriores), ordenada de más antiguo a más reciente.
//
// Para cada offset 0..5 se toma el primer y el último día del mes, se filtran
// las facturas cuya fecha M/D/YYYY cae en ese rango inclusivo y se suman los
// montos; cada resultado se inserta al frente, de modo que la salida queda en
// orden cronológico. Fechas que no parsean quedan fuera de todos los buckets.
func RevenueSeries(invoices []*repository.InvoiceWithCustomer, now time.Time) []dto.MonthRevenue {
	// Fechas parseadas una sola vez; las inválidas se descartan.
	type dated struct {
		date   time.Time
		amount decimal.Decimal
	}
	parsed := make([]dated, 0, len(invoices))
	for _, i := range invoices {
		d, err := i.ParseDate()
		if err != nil {
			continue
		}
		parsed = append(parsed, dated{date: d, amount: i.Amount})
	}

	series := make([]dto.MonthRevenue, 0, revenueMonths)
	for offset := 0; offset < revenueMonths; offset++ {
		// Anclar en el día 1 antes de restar meses evita el desborde de fin de
		// mes (31 de marzo menos un mes no debe caer en marzo). En UTC porque
		// time.Parse deja las fechas de factura en UTC.
		firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -offset, 0)
		lastDay := firstDay.AddDate(0, 1, -1)

		var revenue decimal.Decimal
		for _, p := range parsed {
			if !p.date.Before(firstDay) && !p.date.After(lastDay) {
				revenue = revenue.Add(p.amount)
			}
		}
		series = append([]dto.MonthRevenue{{
			Month:   firstDay.Format("Jan"),
			Revenue: revenue,
		}}, series...)
	}
	return series
}
