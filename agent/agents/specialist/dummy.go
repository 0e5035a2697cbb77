package specialist

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"

	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
)

type DummyArgs struct {
	Message     string `json:"message" jsonschema_description:"Mensaje a procesar."`
	DetailLevel string `json:"detail_level" jsonschema_description:"Nivel de detalle de la respuesta: bajo, medio o alto."`
}

func (a DummyArgs) Prompt() string {
	return fmt.Sprintf(
		"Procesa el siguiente mensaje con nivel de detalle '%s':\n\n%s",
		a.DetailLevel, a.Message,
	)
}

type DummyResponse struct {
	Response string `json:"response"`
}

// DummySpecialist is a smoke test of the whole pipeline.
type DummySpecialist = Specialist[DummyArgs, DummyResponse]

var _ contractx.Specialist = (*DummySpecialist)(nil)

var dummyBlueprint = blueprint[DummyResponse]{
	name:        contractx.SpecialistDummy,
	description: "Un agente de prueba para verificar el sistema. Úsalo cuando el usuario quiera probar el sistema, diga 'ping', 'test', o pida una demostración.",
	wrap:        func(s string) DummyResponse { return DummyResponse{Response: s} },
}

func NewDummySpecialist(ctx context.Context, chatModel einomodel.ToolCallingChatModel, textReverser einotool.BaseTool) (*DummySpecialist, error) {
	return build[DummyArgs](ctx, dummyBlueprint, chatModel, textReverser)
}
