package dto

import (
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/inventory"
)

// ToProductResponse proyecta un producto junto con su evaluación de stock y vencimiento.
func ToProductResponse(p entity.Product, a inventory.Assessment) ProductResponse {
	out := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		Stock:         p.Stock,
		Unit:          p.Unit,
		Price:         p.Price,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		Status:        string(a.Status),
		Discount:      a.Discount,
		DisplayPrice:  a.DisplayPrice,
		DaysRemaining: a.DaysRemaining,
		Value:         p.Value(),
	}
	if p.ExpiryDate != nil {
		out.ExpiryDate = p.ExpiryDate.String()
	}
	return out
}

// ToSupplierResponse proyecta un proveedor.
func ToSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Phone:     s.Phone,
		Email:     s.Email,
		Category:  s.Category,
		Products:  s.Products,
		Status:    s.Status,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}

// ToOrderResponse proyecta una orden. names resuelve nombres de producto (puede ser nil).
func ToOrderResponse(v entity.OrderView, names map[int]string) OrderResponse {
	items := make([]OrderItemDTO, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItemDTO{
			ProductID:   it.ProductID,
			ProductName: names[it.ProductID],
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		})
	}
	return OrderResponse{
		ID:           v.ID,
		PONumber:     v.PONumber,
		SupplierID:   v.SupplierID,
		SupplierName: v.SupplierName,
		Date:         v.Date.String(),
		Status:       string(v.Status),
		Items:        items,
		Notes:        v.Notes,
		Total:        v.Total,
		CreatedAt:    v.CreatedAt,
	}
}

// ToSaleResponse proyecta una venta.
func ToSaleResponse(s entity.Sale, productName string) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Date:        s.Date.String(),
		ProductID:   s.ProductID,
		ProductName: productName,
		Quantity:    s.Quantity,
		Amount:      s.Amount,
		Customer:    s.Customer,
	}
}

// ToActivityResponse proyecta una entrada del registro de actividad.
func ToActivityResponse(a entity.Activity) ActivityResponse {
	return ActivityResponse{ID: a.ID, Date: a.Date, Activity: a.Activity, User: a.User, Details: a.Details}
}

// ToActivityList proyecta una lista de actividades.
func ToActivityList(list []entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToActivityResponse(a))
	}
	return out
}

// ToSettingsResponse proyecta la configuración.
func ToSettingsResponse(s entity.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:            s.CompanyName,
		Timezone:               s.Timezone,
		DateFormat:             s.DateFormat,
		Currency:               s.Currency,
		LowStockThreshold:      s.LowStockThreshold,
		CriticalStockThreshold: s.CriticalStockThreshold,
		ExpiryDaysThreshold:    s.ExpiryDaysThreshold,
		NotificationEmail:      s.NotificationEmail,
		SystemMessage:          s.SystemMessage,
	}
}

// ToUserResponse proyecta un usuario sin su contraseña.
func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Role}
}
