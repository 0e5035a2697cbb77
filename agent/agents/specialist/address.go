package specialist

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

type AddressChangeArgs struct {
	CustomerID string `json:"customer_id" jsonschema_description:"Identificador único del cliente (ej. \"CLI-12345\")."`
	NewAddress string `json:"new_address" jsonschema_description:"La nueva dirección completa incluyendo calle, número, ciudad y código postal."`
	Reason     string `json:"reason" jsonschema_description:"Motivo del cambio de dirección (ej. \"mudanza\", \"error en registro\", \"temporal\")."`
}

func (a AddressChangeArgs) Prompt() string {
	return fmt.Sprintf(
		"Procesa la siguiente solicitud de cambio de dirección:\n- Cliente: %s\n- Nueva dirección: %s\n- Motivo: %s",
		a.CustomerID, a.NewAddress, a.Reason,
	)
}

type AddressResponse struct {
	Response string `json:"response"`
}

type AddressSpecialist = Specialist[AddressChangeArgs, AddressResponse]

var _ contractx.Specialist = (*AddressSpecialist)(nil)

var addressBlueprint = blueprint[AddressResponse]{
	name:        contractx.SpecialistAddress,
	description: "Usa este agente cuando el usuario quiera cambiar su dirección de entrega, modificar datos de envío, o tenga preguntas sobre logística.",
	wrap:        func(s string) AddressResponse { return AddressResponse{Response: s} },
}

// NewAddressSpecialist binds chatModel to the geocoding tool.
func NewAddressSpecialist(ctx context.Context, chatModel einomodel.ToolCallingChatModel, geocoding einotool.BaseTool) (*AddressSpecialist, error) {
	return build[AddressChangeArgs](ctx, addressBlueprint, chatModel, geocoding)
}
