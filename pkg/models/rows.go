package models

import "time"

// Table names, one sheet per table in the exported workbook
const (
	TableDimDate     = "DimDate"
	TableDimRegion   = "DimRegion"
	TableDimTeam     = "DimTeam"
	TableDimProduct  = "DimProduct"
	TableFactRevenue = "FactRevenue"
	TableFactCost    = "FactCost"
	TableFactSLA     = "FactSLA"
	TableFactRisk    = "FactRisk"
)

// DateRow is one calendar day of the date dimension
type DateRow struct {
	DateKey       int // YYYYMMDD
	Date          time.Time
	Year          int
	Quarter       int
	Month         int
	MonthName     string
	Week          int // ISO week
	DayOfWeek     int // Monday=1 .. Sunday=7
	DayName       string
	IsWeekend     int
	FiscalYear    int
	FiscalQuarter int
}

var DateColumns = []string{
	"DateKey", "Date", "Year", "Quarter", "Month", "MonthName", "Week",
	"DayOfWeek", "DayName", "IsWeekend", "FiscalYear", "FiscalQuarter",
}

func (r DateRow) Values() []interface{} {
	return []interface{}{
		r.DateKey, r.Date, r.Year, r.Quarter, r.Month, r.MonthName, r.Week,
		r.DayOfWeek, r.DayName, r.IsWeekend, r.FiscalYear, r.FiscalQuarter,
	}
}

// RegionRow is one city of the region -> country -> city hierarchy
type RegionRow struct {
	RegionKey     int
	Region        string
	Country       string
	City          string
	RegionManager string
}

var RegionColumns = []string{"RegionKey", "Region", "Country", "City", "RegionManager"}

func (r RegionRow) Values() []interface{} {
	return []interface{}{r.RegionKey, r.Region, r.Country, r.City, r.RegionManager}
}

// TeamRow is one sub-team of a department
type TeamRow struct {
	TeamKey    int
	Department string
	SubTeam    string
	TeamLead   string
	HeadCount  int
}

var TeamColumns = []string{"TeamKey", "Department", "SubTeam", "TeamLead", "HeadCount"}

func (r TeamRow) Values() []interface{} {
	return []interface{}{r.TeamKey, r.Department, r.SubTeam, r.TeamLead, r.HeadCount}
}

type ProductRow struct {
	ProductKey  int
	ProductName string
	Category    string
	UnitPrice   int
}

var ProductColumns = []string{"ProductKey", "ProductName", "Category", "UnitPrice"}

func (r ProductRow) Values() []interface{} {
	return []interface{}{r.ProductKey, r.ProductName, r.Category, r.UnitPrice}
}

// RevenueFactRow is a single synthetic sales transaction
type RevenueFactRow struct {
	RevenueID       int
	DateKey         int
	RegionKey       int
	TeamKey         int
	ProductKey      int
	Revenue         float64
	Units           int
	CustomerSegment string
}

var RevenueColumns = []string{
	"RevenueID", "DateKey", "RegionKey", "TeamKey", "ProductKey",
	"Revenue", "Units", "CustomerSegment",
}

func (r RevenueFactRow) Values() []interface{} {
	return []interface{}{
		r.RevenueID, r.DateKey, r.RegionKey, r.TeamKey, r.ProductKey,
		r.Revenue, r.Units, r.CustomerSegment,
	}
}

// CostFactRow is the monthly cost of one team
type CostFactRow struct {
	CostID          int
	DateKey         int
	TeamKey         int
	SalaryCost      float64
	OperationalCost float64
	TotalCost       float64
}

var CostColumns = []string{"CostID", "DateKey", "TeamKey", "SalaryCost", "OperationalCost", "TotalCost"}

func (r CostFactRow) Values() []interface{} {
	return []interface{}{r.CostID, r.DateKey, r.TeamKey, r.SalaryCost, r.OperationalCost, r.TotalCost}
}

// SLAFactRow holds the daily service-level metrics of one region.
// Response and resolution times are in hours, UpTime and SLAAchieved in percent.
type SLAFactRow struct {
	SLAID           int
	DateKey         int
	RegionKey       int
	ResponseTime    float64
	ResolutionTime  float64
	UpTime          float64
	TicketsResolved int
	TicketsOpen     int
	SLATarget       float64
	SLAAchieved     float64
}

var SLAColumns = []string{
	"SLAID", "DateKey", "RegionKey", "ResponseTime", "ResolutionTime", "UpTime",
	"TicketsResolved", "TicketsOpen", "SLATarget", "SLAAchieved",
}

func (r SLAFactRow) Values() []interface{} {
	return []interface{}{
		r.SLAID, r.DateKey, r.RegionKey, r.ResponseTime, r.ResolutionTime, r.UpTime,
		r.TicketsResolved, r.TicketsOpen, r.SLATarget, r.SLAAchieved,
	}
}

type RiskFactRow struct {
	RiskID           int
	DateKey          int
	RegionKey        int
	TeamKey          int
	RiskCategory     string
	RiskScore        int
	Impact           string
	Probability      string
	MitigationStatus string
}

var RiskColumns = []string{
	"RiskID", "DateKey", "RegionKey", "TeamKey", "RiskCategory", "RiskScore",
	"Impact", "Probability", "MitigationStatus",
}

func (r RiskFactRow) Values() []interface{} {
	return []interface{}{
		r.RiskID, r.DateKey, r.RegionKey, r.TeamKey, r.RiskCategory, r.RiskScore,
		r.Impact, r.Probability, r.MitigationStatus,
	}
}
