package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/export"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
	"github.com/jhoicas/freshstock-api/internal/application/usecase"
)

// OrderHandler órdenes de compra: CRUD, recepción y descargas PDF/XML.
type OrderHandler struct {
	uc      *usecase.OrderUseCase
	receive *inventory.ReceiveOrderUseCase
	export  *export.OrderExportUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, receive *inventory.ReceiveOrderUseCase, exp *export.OrderExportUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, receive: receive, export: exp}
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "PO o proveedor"
// @Param        status  query  string  false  "Pending | Approved | Shipped | Received | Cancelled"
// @Param        date    query  string  false  "today | week | month | quarter"
// @Success      200     {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var in dto.OrderFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Proveedor, fecha e ítems"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar orden o cambiar su estado
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{ID: id, Deleted: true})
}

// Receive godoc
// @Summary      Recibir orden (acredita el stock una sola vez)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receive [post]
func (h *OrderHandler) Receive(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if _, err := h.receive.Receive(c.UserContext(), id, GetActor(c)); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF GET /api/orders/:id/pdf
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	body, filename, err := h.export.OrderPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, body)
}

// XML GET /api/orders/:id/xml
func (h *OrderHandler) XML(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	body, filename, err := h.export.OrderXML(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, fiber.MIMEApplicationXMLCharsetUTF8, filename, body)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	// Attachment deduce el tipo por la extensión; se fija después para no perder el charset.
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}
