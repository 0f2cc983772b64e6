package entity

// Stage representa una etapa del pipeline de onboarding de comercios.
// El orden es significativo solo para la presentación de columnas del tablero:
// no se impone un grafo de transiciones (cualquier etapa puede pasar a cualquier otra).
type Stage string

// Etapas del pipeline (11, en orden de tablero).
const (
	StageApplicationStarted Stage = "application_started"
	StageDiscovery          Stage = "discovery"
	StageQualified          Stage = "qualified"
	StageOpportunities      Stage = "opportunities"
	StageUnderwritingReview Stage = "underwriting_review"
	StageProcessorApproval  Stage = "processor_approval"
	StageIntegrationSetup   Stage = "integration_setup"
	StageGatewaySubmitted   Stage = "gateway_submitted"
	StageLiveActivated      Stage = "live_activated"
	StageClosedWon          Stage = "closed_won"
	StageClosedLost         Stage = "closed_lost"
)

// InitialStage etapa con la que nace toda aplicación nueva.
const InitialStage = StageApplicationStarted

// pipelineStages orden canónico de columnas del tablero.
var pipelineStages = []Stage{
	StageApplicationStarted,
	StageDiscovery,
	StageQualified,
	StageOpportunities,
	StageUnderwritingReview,
	StageProcessorApproval,
	StageIntegrationSetup,
	StageGatewaySubmitted,
	StageLiveActivated,
	StageClosedWon,
	StageClosedLost,
}

// stageLabels etiquetas visibles por etapa.
var stageLabels = map[Stage]string{
	StageApplicationStarted: "New",
	StageDiscovery:          "Discovery",
	StageQualified:          "Qualified",
	StageOpportunities:      "Opportunities",
	StageUnderwritingReview: "Underwriting Review",
	StageProcessorApproval:  "Processor Approval",
	StageIntegrationSetup:   "Integration Setup",
	StageGatewaySubmitted:   "Gateway Submitted",
	StageLiveActivated:      "Live / Activated",
	StageClosedWon:          "Closed Won",
	StageClosedLost:         "Closed Lost",
}

// Stages devuelve las etapas en orden de tablero (copia, el slice interno no se expone).
func Stages() []Stage {
	out := make([]Stage, len(pipelineStages))
	copy(out, pipelineStages)
	return out
}

// Valid indica si s pertenece a la enumeración fija de etapas.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label devuelve la etiqueta visible de la etapa ("" si no es válida).
func (s Stage) Label() string {
	return stageLabels[s]
}
