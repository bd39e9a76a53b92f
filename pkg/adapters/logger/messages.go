package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Decode stage
		"Decoded %d frames (%dx%d canvas)": "%d フレームをデコードしました (%dx%d キャンバス)",

		// Assemble stage
		"Assembling %d frames (%dx%d canvas)":                   "%d フレームを組み立て中 (%dx%d キャンバス)",
		"Timeline assembled: %d frames, %s total, loop count %d": "タイムライン組み立て完了: %d フレーム, 合計 %s, ループ回数 %d",
		"Failed to save timeline JSON: %s":                        "タイムラインJSONの保存に失敗しました: %s",

		// Cache
		"Built timeline for %s: %d frames": "%s のタイムラインを構築しました: %d フレーム",
		"Attach to unknown identity %s":    "未知のID %s へのアタッチ",
		"Evicted %s":                       "%s を破棄しました",

		// Export
		"Exporting %d frames with %d workers": "%d フレームを %d ワーカーで書き出し中",
		"Export completed: %d files in %s":    "書き出し完了: %d ファイル (%s)",

		// Playback
		"Frame %d/%d":          "フレーム %d/%d",
		"Playback completed":   "再生が完了しました",
		"Playback interrupted": "再生が中断されました",

		// Errors
		"Failed to decode %s: %s": "%s のデコードに失敗しました: %s",
		"Failed to export: %s":    "書き出しに失敗しました: %s",
	})
}
