// Package main provides localization for the gifplay CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Inspect, export and play animated images": "アニメーション画像の検査・書き出し・再生",

		// Global flags
		"Path to a YAML configuration file":    "YAML設定ファイルのパス",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Info command
		"Print the timeline of an animated image": "アニメーション画像のタイムラインを表示",

		// Export command
		"Write each composited frame as a still image":        "合成済みフレームを静止画として書き出し",
		"Output directory":                                    "出力ディレクトリ",
		"Still image format (png or jpeg)":                    "静止画フォーマット（png または jpeg）",
		"JPEG quality (1-100)":                                "JPEG品質（1-100）",
		"Scale factor for exported frames":                    "書き出しフレームの拡大縮小率",
		"Flatten transparency onto a hex color (e.g. #ffffff)": "透明部分を指定色で塗りつぶし（例: #ffffff）",
		"Number of parallel encode workers":                   "並列エンコードワーカー数",
		"Enable debug output":                                 "デバッグ出力を有効化",
		"Exported %d frames to %s":                            "%d フレームを %s に書き出しました",

		// Play command
		"Drive playback with a wall clock and log frame changes":       "実時間で再生しフレーム変化をログ出力",
		"Speed ratio (mutually exclusive with --duration)":             "速度倍率（--duration と同時指定不可）",
		"Explicit duration for one cycle (mutually exclusive with --speed)": "1サイクルの明示的な長さ（--speed と同時指定不可）",

		// Version command
		"Show version information": "バージョン情報を表示",
		"gifplay version %s":       "gifplay バージョン %s",
	})
}
