package cache

import (
	"time"
)

// sessionOpenHour はBODIVAの取引開始時刻（ルアンダ時間）です。
const sessionOpenHour = 9

// luanda はAfrica/Luandaのタイムゾーンを返します。
// tzdataが無い環境ではWAT（UTC+1、夏時間なし）の固定ゾーンを使います。
func luanda() *time.Location {
	loc, err := time.LoadLocation("Africa/Luanda")
	if err != nil {
		return time.FixedZone("WAT", 60*60)
	}
	return loc
}

// TimeUntilNextSession は次の取引開始（ルアンダ時間9時）までの期間を返します。
// 価格はセッションごとに更新されるため、カタログキャッシュのTTLに使います。
func TimeUntilNextSession(now time.Time) time.Duration {
	loc := luanda()
	local := now.In(loc)

	next := time.Date(local.Year(), local.Month(), local.Day(), sessionOpenHour, 0, 0, 0, loc)

	// 今日の取引開始が既に過ぎている場合は翌日を使用
	if !local.Before(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(local)
}
