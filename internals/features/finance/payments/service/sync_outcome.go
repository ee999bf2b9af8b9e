package service

// SyncOutcome: 결제 쓰기 이후 파생 상태 동기화 결과.
// 동기화 실패는 결제 쓰기를 실패시키지 않는다 — 대신 경고로 노출해
// 호출자(핸들러/테스트)가 열화 상태를 확인할 수 있게 한다.
type SyncOutcome struct {
	LedgerSynced bool     `json:"ledger_synced"`
	PointSynced  bool     `json:"point_synced"`
	ProjectionOK bool     `json:"projection_ok"`
	Warnings     []string `json:"warnings,omitempty"`
}

func (o *SyncOutcome) warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}

// Degraded: 하나라도 실패했는지
func (o *SyncOutcome) Degraded() bool {
	return len(o.Warnings) > 0
}
