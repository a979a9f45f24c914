package dto

import "github.com/shopspring/decimal"

// MonthRevenue un bucket del historial de ingresos: un mes calendario.
type MonthRevenue struct {
	Month   string          `json:"month"` // nombre corto del mes, ej: "Jun"
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummary respuesta de GET /dashboard: totales por estado, conteos
// del owner, serie de ingresos de los últimos 6 meses (de más antiguo a más
// reciente) y las 5 facturas más recientes con cliente resuelto.
type DashboardSummary struct {
	TotalPaid      decimal.Decimal   `json:"totalPaid"`
	TotalPending   decimal.Decimal   `json:"totalPending"`
	CustomerCount  int               `json:"customerCount"`
	InvoiceCount   int               `json:"invoiceCount"`
	RevenueData    []MonthRevenue    `json:"revenueData"`
	LatestInvoices []InvoiceResponse `json:"latestInvoices"`
}
