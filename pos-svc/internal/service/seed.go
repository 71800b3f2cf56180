package service

import "foodcourt-pos/pos-svc/internal/domain"

// Demo data installed on first start when SEED_DEMO is on.

func DemoTenants() []domain.Tenant {
	return []domain.Tenant{
		{ID: "1", Name: "Bakso Pak Kumis", Description: "Bakso legendaris sejak 1990", Image: "/placeholder.svg", TotalSales: 23560000, TotalTransactions: 230},
		{ID: "2", Name: "Ayam Geprek Bu Sri", Description: "Geprek super pedas", Image: "/placeholder.svg", TotalSales: 15500350, TotalTransactions: 180},
		{ID: "3", Name: "Mie Ayam Cak Man", Description: "Mie ayam spesial", Image: "/placeholder.svg", TotalSales: 12300000, TotalTransactions: 150},
	}
}

func DemoMenuItems() []domain.MenuItem {
	const (
		bakso   = "/images/food-bakso.jpg"
		geprek  = "/images/food-geprek.jpg"
		mieAyam = "/images/food-mie-ayam.jpg"
		esTeh   = "/images/food-es-teh.jpg"
	)
	return []domain.MenuItem{
		{ID: "1", TenantID: "1", Name: "Bakso Urat", Price: 25000, Image: bakso, Category: domain.CategoryFood},
		{ID: "2", TenantID: "1", Name: "Bakso Besar", Price: 30000, Image: bakso, Category: domain.CategoryFood},
		{ID: "3", TenantID: "1", Name: "Bakso Koreng", Price: 20000, Image: bakso, Category: domain.CategoryFood},
		{ID: "4", TenantID: "1", Name: "Pangsit Goreng", Price: 15000, Image: bakso, Category: domain.CategoryFood},
		{ID: "5", TenantID: "1", Name: "Pangsit Kuah", Price: 18000, Image: bakso, Category: domain.CategoryFood},
		{ID: "6", TenantID: "1", Name: "Es Teh Manis", Price: 8000, Image: esTeh, Category: domain.CategoryDrink},
		{ID: "7", TenantID: "2", Name: "Geprek Original", Price: 20000, Image: geprek, Category: domain.CategoryFood},
		{ID: "8", TenantID: "2", Name: "Geprek Sambal Matah", Price: 25000, Image: geprek, Category: domain.CategoryFood},
		{ID: "9", TenantID: "3", Name: "Mie Ayam Biasa", Price: 18000, Image: mieAyam, Category: domain.CategoryFood},
		{ID: "10", TenantID: "3", Name: "Mie Ayam Bakso", Price: 25000, Image: mieAyam, Category: domain.CategoryFood},
	}
}

func DemoTransactions() []domain.Transaction {
	return []domain.Transaction{
		{ID: "1", TenantID: "1", TenantName: "Bakso Pak Kumis", Items: []domain.CartItem{}, Total: 75000, Date: "2024-12-09", PaymentMethod: domain.PaymentCash},
		{ID: "2", TenantID: "1", TenantName: "Bakso Pak Kumis", Items: []domain.CartItem{}, Total: 50000, Date: "2024-12-08", PaymentMethod: domain.PaymentQRIS},
	}
}
