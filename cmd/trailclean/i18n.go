// Package main provides localization for the trailclean CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Remove timestamp watermarks from trail camera videos.": "トレイルカメラ動画からタイムスタンプのウォーターマークを除去します。",

		// Clean command
		"Remove the watermark stamp from a video.":          "動画からウォーターマークスタンプを除去",
		"Input video file path.":                            "入力動画ファイルパス",
		"Output video file path (default: <input>_cleaned).": "出力動画ファイルパス（デフォルト: <input>_cleaned）",
		"YAML preset file with geometry and processing options.": "配置と処理オプションのYAMLプリセットファイル",

		// Geometry flags
		"Patch region width in pixels (default: 110).":                "修正領域の幅（ピクセル、デフォルト: 110）",
		"Patch region height in pixels (default: 110).":               "修正領域の高さ（ピクセル、デフォルト: 110）",
		"Patch region left offset in pixels (default: 0).":            "修正領域の左端オフセット（ピクセル、デフォルト: 0）",
		"Patch region bottom offset in pixels (default: 0).":          "修正領域の下端オフセット（ピクセル、デフォルト: 0）",
		"Height of the mirrored band in pixels (default: 54).":        "ミラーリング帯の高さ（ピクセル、デフォルト: 54）",
		"Distance above the patch to mirror from in pixels (default: 56).": "ミラー元までの距離（ピクセル、デフォルト: 56）",

		// Processing flags
		"Directory for extracted frames (default: frames_<input> next to the input).": "抽出フレームのディレクトリ（デフォルト: 入力と同じ場所の frames_<input>）",
		"Keep the extracted frames after the run.":                    "実行後も抽出フレームを保持",
		"Number of parallel patch workers (default: number of CPUs).": "並列修正ワーカー数（デフォルト: CPU数）",

		// Debug flags
		"Enable debug output.":         "デバッグ出力を有効化",
		"Directory for debug output.":  "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"trailclean version %s":     "trailclean バージョン %s",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Output saved to %s":            "出力を %s に保存しました",
		"Total processing time: %s":     "合計処理時間: %s",

		// Progress
		"Patching frames %d/%d (%d%%) ETA %s": "フレーム修正中 %d/%d (%d%%) 残り %s",
	})
}
