package app

import (
	"github.com/google/uuid"

	"github.com/casaflow/property-service/internal/models"
	"github.com/casaflow/property-service/internal/utils"
)

// DemoOwnerID is the landlord all demo data belongs to. Stable so demo
// tokens minted against it keep working across restarts.
var DemoOwnerID = uuid.MustParse("6f1c2a40-9b7e-4d35-8f21-3a5c8e9d1b04")

// SeedDemoData loads a small portfolio into the local store so the app
// renders content with the remote backend unconfigured. Remote data is
// never seeded from here.
func (a *App) SeedDemoData() {
	if a.Config.RemoteConfigured {
		return
	}

	riviera := a.Fallback.CreateProperty(models.Property{
		OwnerID:      DemoOwnerID,
		Name:         "Résidence Riviera",
		Address:      "Boulevard Arsène Usher Assouan, Cocody, Abidjan",
		PropertyType: "apartment",
		TotalUnits:   3,
		YearBuilt:    2015,
		AreaSqm:      860,
		Description:  "Three-unit walk-up near the lagoon.",
	})
	plateau := a.Fallback.CreateProperty(models.Property{
		OwnerID:      DemoOwnerID,
		Name:         "Immeuble Plateau Centre",
		Address:      "Avenue Delafosse, Plateau, Abidjan",
		PropertyType: "mixed",
		TotalUnits:   2,
		YearBuilt:    2008,
		AreaSqm:      540,
		Description:  "Ground-floor retail with flats above.",
	})

	u1 := a.Fallback.CreateUnit(models.Unit{PropertyID: riviera.ID, UnitNumber: "1A", RentAmount: 250000})
	u2 := a.Fallback.CreateUnit(models.Unit{PropertyID: riviera.ID, UnitNumber: "2A", RentAmount: 250000})
	a.Fallback.CreateUnit(models.Unit{PropertyID: riviera.ID, UnitNumber: "3B", RentAmount: 310000})
	u4 := a.Fallback.CreateUnit(models.Unit{PropertyID: plateau.ID, UnitNumber: "RDC", RentAmount: 450000})
	a.Fallback.CreateUnit(models.Unit{PropertyID: plateau.ID, UnitNumber: "E1", RentAmount: 280000})

	a.seedTenant(models.Tenant{
		FullName:    "Kone Aminata",
		Email:       "aminata.kone@example.ci",
		PhoneNumber: "+225 07 09 55 12 34",
		UnitID:      &u1.ID,
	})
	a.seedTenant(models.Tenant{
		FullName:    "Yao Kouassi",
		Email:       "yao.kouassi@example.ci",
		PhoneNumber: "+225 05 44 21 90 87",
		UnitID:      &u2.ID,
	})
	a.seedTenant(models.Tenant{
		FullName: "Traoré Ibrahim",
		Email:    "ibrahim.traore@example.ci",
	})

	a.Fallback.CreateMaintenanceRequest(models.MaintenanceRequest{
		UnitID:      u2.ID,
		Title:       "Leaking kitchen tap",
		Description: "Steady drip under the sink, tenant reports worsening.",
		Status:      models.MaintenancePending,
	})
	a.Fallback.CreateMaintenanceRequest(models.MaintenanceRequest{
		UnitID:     u4.ID,
		Title:      "Repaint storefront shutters",
		Status:     models.MaintenanceScheduled,
		AssignedTo: "Atelier Koffi",
	})

	a.Fallback.CreateTransaction(models.Transaction{
		PropertyID:  riviera.ID,
		UnitID:      &u1.ID,
		Type:        models.TransactionIncome,
		Amount:      250000,
		Description: "Rent – 1A",
	})
	a.Fallback.CreateTransaction(models.Transaction{
		PropertyID:  plateau.ID,
		Type:        models.TransactionExpense,
		Amount:      75000,
		Description: "Generator fuel",
	})

	utils.Logger.Info("Seeded demo data into the local store")
}

func (a *App) seedTenant(t models.Tenant) {
	if _, err := a.Fallback.CreateTenant(t); err != nil {
		utils.Logger.WithError(err).Warnf("skipped seeding tenant %s", t.FullName)
	}
}
