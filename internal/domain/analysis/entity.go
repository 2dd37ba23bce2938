package analysis

// Code enum untuk warning light
type Code string

const (
	CodeEngine  Code = "ENGINE"
	CodeTPMS    Code = "TPMS"
	CodeBattery Code = "BATT"
	CodeBrake   Code = "BRAKE"
	CodeOil     Code = "OIL"
	CodeCoolant Code = "COOLANT"
	CodeAirbag  Code = "AIRBAG"
	CodeABS     Code = "ABS"
	CodeInfo    Code = "INFO"

	// CodeDemo is synthetic, returned only when the gateway runs without
	// provider credentials. It is not part of the prompt enumeration.
	CodeDemo Code = "DEMO"
)

// Labels lists the codes the model is allowed to pick from, in prompt order.
var Labels = []Code{
	CodeEngine, CodeTPMS, CodeBattery, CodeBrake, CodeOil,
	CodeCoolant, CodeAirbag, CodeABS, CodeInfo,
}

// Source enum untuk provenance
type Source string

const (
	SourceAI    Source = "ai"    // model-derived
	SourceDemo  Source = "demo"  // gateway running without credentials
	SourceLocal Source = "local" // client-side filename heuristic
)

// Result adalah satu hasil analisa. Constructed fresh per request, never
// mutated afterwards.
type Result struct {
	Code   Code     `json:"code"`
	Title  string   `json:"title"`
	Steps  []string `json:"steps"`
	Source Source   `json:"source"`
}

// StepCount: steps is always treated as a unit of exactly this many actions.
const StepCount = 3

// User-facing defaults, Korean like the rest of the product copy.
const (
	DefaultAITitle = "특이 경고 없음 (AI)"

	DemoTitle = "서버 설정 필요 (데모 응답)"
)

// DefaultSteps is substituted whenever the model does not return exactly
// three steps. Returned as a fresh slice so callers can't share state.
func DefaultSteps() []string {
	return []string{"정상으로 보입니다", "문제가 지속되면 재촬영", "필요 시 정비소 방문"}
}

// DemoSteps are the fixed setup instructions of the credential-less response.
func DemoSteps() []string {
	return []string{"환경변수에 CF_ACCOUNT_ID, CF_API_TOKEN 설정", "배포 다시 실행", "정상 동작 확인"}
}

// DemoResult is the degraded-mode success response: valid, status 200,
// deliberately not an error.
func DemoResult() Result {
	return Result{
		Code:   CodeDemo,
		Title:  DemoTitle,
		Steps:  DemoSteps(),
		Source: SourceDemo,
	}
}
