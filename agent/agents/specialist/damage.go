package specialist

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

type DamageReportArgs struct {
	ItemName            string `json:"item_name" jsonschema_description:"Nombre o identificador del artículo dañado."`
	DescriptionOfDamage string `json:"description_of_damage" jsonschema_description:"Descripción detallada del daño observado por el usuario."`
}

func (a DamageReportArgs) Prompt() string {
	return fmt.Sprintf(
		"Reporte de daño para el artículo '%s'. Descripción del daño: %s",
		a.ItemName, a.DescriptionOfDamage,
	)
}

type DamageResponse struct {
	Response string `json:"response"`
}

type DamageSpecialist = Specialist[DamageReportArgs, DamageResponse]

var _ contractx.Specialist = (*DamageSpecialist)(nil)

var damageBlueprint = blueprint[DamageResponse]{
	name:        contractx.SpecialistDamage,
	description: "Usa este agente cuando el usuario reporte un artículo dañado, roto o defectuoso.",
	wrap:        func(s string) DamageResponse { return DamageResponse{Response: s} },
}

// NewDamageSpecialist binds chatModel to the cost database tool. Costs and
// the repair decision are left to the model.
func NewDamageSpecialist(ctx context.Context, chatModel einomodel.ToolCallingChatModel, costDatabase einotool.BaseTool) (*DamageSpecialist, error) {
	return build[DamageReportArgs](ctx, damageBlueprint, chatModel, costDatabase)
}
