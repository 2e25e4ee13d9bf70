package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting watermark removal for %s": "%s のウォーターマーク除去を開始します",
		"Starting pipeline":                 "パイプラインを開始します",
		"Video tooling unavailable: %s":     "動画ツールが利用できません: %s",
		"Input video not found: %s":         "入力動画が見つかりません: %s",
		"Output saved to %s":                "出力を %s に保存しました",
		"Pipeline completed successfully":   "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":     "中断されました。シャットダウン中...",
		"Total processing time: %s":         "合計処理時間: %s",

		// Extract stage
		"Probing %s":                               "%s を解析中",
		"Detected frame rate %s (%.2f fps), audio: %v": "フレームレート %s (%.2f fps)、音声: %v を検出しました",
		"Extracting frames to %s":                  "%s へフレームを抽出中",
		"Extracting frames from %s":                "%s からフレームを抽出中",
		"Extracted %d frames":                      "%d フレームを抽出しました",
		"Extracted %d frames at %s fps":            "%d フレームを %s fps で抽出しました",

		// Patch stage
		"Patching %d frames with %d workers": "%d フレームを %d ワーカーで修正中",
		"Patching completed":                 "フレーム修正が完了しました",
		"Patched %d frames":                  "%d フレームを修正しました",

		// Assemble stage
		"Encoding %d frames at %s fps": "%d フレームを %s fps でエンコード中",
		"Assembling video to %s":       "%s へ動画を再構成中",
		"Muxing audio track from %s":   "%s から音声トラックを合成中",
		"Video assembled: %d bytes":    "動画の再構成完了: %d バイト",

		// Cleanup
		"Removed temporary directory %s":           "一時ディレクトリ %s を削除しました",
		"Keeping temporary frames in %s":           "一時フレームを %s に保持します",
		"Failed to remove temporary directory: %s": "一時ディレクトリの削除に失敗しました: %s",

		// Errors
		"Failed to probe video: %s":    "動画の解析に失敗しました: %s",
		"Failed to extract frames: %s": "フレーム抽出に失敗しました: %s",
		"Failed to patch frames: %s":   "フレーム修正に失敗しました: %s",
		"Failed to assemble video: %s": "動画の再構成に失敗しました: %s",
	})
}
