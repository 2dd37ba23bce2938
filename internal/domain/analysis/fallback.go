package analysis

import "strings"

// ClassifyFilename is the client-side substitute classifier, used only when
// the gateway could not be reached at all. It inspects nothing but the
// uploaded file's name, matching lowercased keywords in precedence order.
// Deterministic, no network, no file content.
func ClassifyFilename(fileName string) Result {
	name := strings.ToLower(fileName)

	switch {
	case strings.Contains(name, "tire") || strings.Contains(name, "tpms"):
		return Result{
			Code:   CodeTPMS,
			Title:  "타이어 공기압 경고 (추정)",
			Steps:  []string{"공기압 보충", "펑크 점검", "겨울철 보정"},
			Source: SourceLocal,
		}
	case strings.Contains(name, "battery"):
		return Result{
			Code:   CodeBattery,
			Title:  "배터리/충전 경고 (추정)",
			Steps:  []string{"야간 주행 자제", "단자 점검", "충전 전압 측정"},
			Source: SourceLocal,
		}
	case strings.Contains(name, "engine") || strings.Contains(name, "check"):
		return Result{
			Code:   CodeEngine,
			Title:  "엔진 계통 경고 (추정)",
			Steps:  []string{"가속 자제", "연료캡 확인", "OBD-II 스캔"},
			Source: SourceLocal,
		}
	}
	return Result{
		Code:   CodeInfo,
		Title:  "특이 경고 없음 (일반 표시)",
		Steps:  []string{"연료/냉각수/오일 확인", "문제가 지속되면 재업로드", "필요 시 정비소 방문"},
		Source: SourceLocal,
	}
}
