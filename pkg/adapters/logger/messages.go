package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Batch (info)
		"Developing photos in %s":       "%s の写真を現像中",
		"Developed %s -> %s":            "%s を現像しました -> %s",
		"Developed %d of %d photos":     "%d / %d 枚の写真を現像しました",
		"No photos found in %s":         "%s に写真が見つかりません",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Loaded %d logos":               "%d 個のロゴを読み込みました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Batch (errors)
		"Failed to create output directory: %s": "出力ディレクトリを作成できませんでした: %s",
		"Failed to list input files: %s":        "入力ファイルを一覧できませんでした: %s",
		"Failed to develop %s: %s":              "%s を現像できませんでした: %s",
		"%d photos could not be developed":      "%d 枚の写真を現像できませんでした",
		"Failed to write summary: %s":           "サマリーの書き込みに失敗しました: %s",

		// Resources
		"Failed to load font %s: %s":                "フォント %s を読み込めませんでした: %s",
		"Failed to load logos from %s: %s":          "%s からロゴを読み込めませんでした: %s",
		"Sub font unavailable, using main font: %s": "サブフォントを使用できないためメインフォントを使います: %s",

		// Develop stage
		"Failed to save debug output: %s": "デバッグ出力を保存できませんでした: %s",

		// Server
		"Listening on %s":                                "%s で待ち受けています",
		"Rejected upload over %d bytes [%s]":             "%d バイトを超えるアップロードを拒否しました [%s]",
		"Unknown painter %q, using %s":                   "不明なペインター %q のため %s を使用します",
		"Unknown position %q, using the painter default": "不明な位置 %q のためペインターの既定値を使用します",
		"Rate limit exceeded for %s [%s]":                "%s のリクエスト数が上限を超えました [%s]",
		"Failed to accept upload: %s [%s]":               "アップロードを受け付けられませんでした: %s [%s]",
		"Failed to develop upload: %s [%s]":              "アップロードを現像できませんでした: %s [%s]",
	})
}
