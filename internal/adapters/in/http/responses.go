package http

import (
	"time"

	"fueldelivery/internal/core/application/usecases/queries"
	"fueldelivery/internal/core/domain/model/kernel"
)

type stationResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	FuelTypes []string `json:"fuelTypes"`
}

// fuelOptionResponse carries the global price customers pay; stationPrice is the
// price recorded on the station's inventory row.
type fuelOptionResponse struct {
	FuelType     string  `json:"fuelType"`
	Available    string  `json:"available"`
	StationPrice string  `json:"stationPrice"`
	Price        *string `json:"price"`
}

type fuelOptionsResponse struct {
	StationID string               `json:"stationId"`
	Name      string               `json:"name"`
	Address   string               `json:"address"`
	Options   []fuelOptionResponse `json:"options"`
	Flashes   Flashes              `json:"flashes"`
}

type quoteResponse struct {
	StationID   string `json:"stationId"`
	StationName string `json:"stationName"`
	FuelType    string `json:"fuelType"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
	ServiceFee  string `json:"serviceFee"`
	Total       string `json:"total"`
}

type userOrderResponse struct {
	ID            string    `json:"id"`
	StationID     string    `json:"stationId"`
	StationName   string    `json:"stationName"`
	FuelType      string    `json:"fuelType"`
	Quantity      string    `json:"quantity"`
	UnitPrice     string    `json:"unitPrice"`
	Subtotal      string    `json:"subtotal"`
	ServiceFee    string    `json:"serviceFee"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	AgentName     string    `json:"agentName,omitempty"`
	AgentContact  string    `json:"agentContact,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type userOrdersResponse struct {
	Orders  []userOrderResponse `json:"orders"`
	Flashes Flashes             `json:"flashes"`
}

type dashboardOrderResponse struct {
	ID            string    `json:"id"`
	UserName      string    `json:"userName"`
	UserMobile    string    `json:"userMobile"`
	FuelType      string    `json:"fuelType"`
	Quantity      string    `json:"quantity"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	AgentID       *string   `json:"agentId,omitempty"`
	AgentName     string    `json:"agentName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type dashboardAgentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
}

type dashboardInventoryResponse struct {
	ID       string `json:"id"`
	FuelType string `json:"fuelType"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

type dashboardStatsResponse struct {
	Pending         int `json:"pending"`
	InProgress      int `json:"inProgress"`
	DeliveredToday  int `json:"deliveredToday"`
	AvailableAgents int `json:"availableAgents"`
}

type dashboardResponse struct {
	Orders    []dashboardOrderResponse     `json:"orders"`
	Agents    []dashboardAgentResponse     `json:"agents"`
	Inventory []dashboardInventoryResponse `json:"inventory"`
	Stats     dashboardStatsResponse       `json:"stats"`
	Flashes   Flashes                      `json:"flashes"`
}

func toStationResponses(stations []queries.StationResponse) []stationResponse {
	out := make([]stationResponse, len(stations))
	for i, st := range stations {
		out[i] = stationResponse{
			ID:        st.ID.String(),
			Name:      st.Name,
			Address:   st.Address,
			FuelTypes: st.FuelTypes,
		}
	}
	return out
}

func toFuelOptionsResponse(resp queries.GetStationFuelOptionsQueryResponse, flashes Flashes) fuelOptionsResponse {
	options := make([]fuelOptionResponse, len(resp.Options))
	for i, o := range resp.Options {
		options[i] = fuelOptionResponse{
			FuelType:     o.FuelType,
			Available:    o.Available.String(),
			StationPrice: o.InventoryPrice.String(),
		}
		if o.GlobalPrice != nil {
			price := o.GlobalPrice.String()
			options[i].Price = &price
		}
	}
	return fuelOptionsResponse{
		StationID: resp.StationID.String(),
		Name:      resp.Name,
		Address:   resp.Address,
		Options:   options,
		Flashes:   flashes,
	}
}

func toQuoteResponse(q queries.GetQuoteQueryResponse) quoteResponse {
	return quoteResponse{
		StationID:   q.StationID.String(),
		StationName: q.StationName,
		FuelType:    q.FuelType,
		Quantity:    q.Quantity.String(),
		UnitPrice:   q.UnitPrice.String(),
		Subtotal:    q.Subtotal.String(),
		ServiceFee:  q.ServiceFee.String(),
		Total:       q.Total.String(),
	}
}

func toUserOrderResponses(orders []queries.UserOrder) []userOrderResponse {
	out := make([]userOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = userOrderResponse{
			ID:            o.ID.String(),
			StationID:     o.StationID.String(),
			StationName:   o.StationName,
			FuelType:      o.FuelType,
			Quantity:      o.Quantity.String(),
			UnitPrice:     o.UnitPrice.String(),
			Subtotal:      o.Subtotal.String(),
			ServiceFee:    o.ServiceFee.String(),
			TotalAmount:   o.TotalAmount.String(),
			PaymentMethod: o.PaymentMethod.String(),
			Address:       o.Address,
			Status:        o.Status.String(),
			AgentName:     o.AgentName,
			AgentContact:  o.AgentContact,
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.UpdatedAt,
		}
	}
	return out
}

func toDashboardResponse(d queries.GetManagerDashboardQueryResponse, flashes Flashes) dashboardResponse {
	resp := dashboardResponse{
		Orders:    make([]dashboardOrderResponse, len(d.Orders)),
		Agents:    make([]dashboardAgentResponse, len(d.Agents)),
		Inventory: make([]dashboardInventoryResponse, len(d.Inventory)),
		Stats: dashboardStatsResponse{
			Pending:         d.Stats.Pending,
			InProgress:      d.Stats.InProgress,
			DeliveredToday:  d.Stats.DeliveredToday,
			AvailableAgents: d.Stats.AvailableAgents,
		},
		Flashes: flashes,
	}
	for i, o := range d.Orders {
		resp.Orders[i] = dashboardOrderResponse{
			ID:            o.ID.String(),
			UserName:      o.UserName,
			UserMobile:    o.UserMobile,
			FuelType:      o.FuelType,
			Quantity:      o.Quantity.String(),
			TotalAmount:   o.TotalAmount.String(),
			PaymentMethod: o.PaymentMethod.String(),
			Address:       o.Address,
			Status:        o.Status.String(),
			AgentID:       optionalID(o.AgentID),
			AgentName:     o.AgentName,
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.UpdatedAt,
		}
	}
	for i, a := range d.Agents {
		resp.Agents[i] = dashboardAgentResponse{
			ID:      a.ID.String(),
			Name:    a.Name,
			Contact: a.Contact,
			Status:  a.Status.String(),
		}
	}
	for i, item := range d.Inventory {
		resp.Inventory[i] = dashboardInventoryResponse{
			ID:       item.ID.String(),
			FuelType: item.FuelType,
			Quantity: item.Quantity.String(),
			Price:    item.Price.String(),
		}
	}
	return resp
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
