// Package main provides localization for the film CLI.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
)

// flagHelp maps the help variables of the command structs to their English text.
var flagHelp = map[string]string{
	"develop_help":        "Frame every photo of a directory",
	"serve_help":          "Serve the develop API over HTTP",
	"version_help":        "Show version information",
	"config_help":         "YAML configuration file",
	"font_help":           "Main font file (TTF, default: built-in Go Regular)",
	"sub_font_help":       "Font for secondary lines (falls back to the main font)",
	"logos_help":          "Directory of maker logos named <maker>.<ext>",
	"quality_help":        "JPEG quality (1-100, default: 90)",
	"no_auto_orient_help": "Do not rotate photos according to their EXIF orientation",
	"debug_help":          "Enable debug output",
	"debug_dir_help":      "Directory for debug output (default: ./debug)",
	"log_level_help":      "Log level (debug, info, warn, error, quiet)",
	"quiet_help":          "Suppress all log output",
	"input_help":          "Directory of source photos",
	"output_help":         "Directory for framed photos",
	"painter_help":        "Painter style (triangular, duel, diagonal, blank)",
	"position_help":       "Content band position (top, bottom, left, right, middle)",
	"pad_help":            "Add thin padding around the photo",
	"format_help":         "Output format (jpeg or png)",
	"workers_help":        "Number of parallel workers (default: number of CPUs)",
	"summary_help":        "Write a run summary to file (JSON for .json, Markdown otherwise)",
	"port_help":           "Port to listen on (default: 3000)",
}

// helpVars translates flag help for the current locale.
func helpVars() kong.Vars {
	vars := kong.Vars{}
	for key, text := range flagHelp {
		vars[key] = l10n.T(text)
	}
	return vars
}

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Frame photos as instant-film prints with their camera metadata.": "写真をカメラ情報入りのインスタントフィルム風プリントに仕上げます。",

		// Commands
		"Frame every photo of a directory": "ディレクトリ内の全ての写真を現像",
		"Serve the develop API over HTTP":  "現像APIをHTTPで提供",
		"Show version information":         "バージョン情報を表示",
		"film (Go) version %s":             "film (Go版) バージョン %s",

		// Resource flags
		"YAML configuration file":                                "YAML設定ファイル",
		"Main font file (TTF, default: built-in Go Regular)":     "メインフォントファイル（TTF、デフォルト: 内蔵 Go Regular）",
		"Font for secondary lines (falls back to the main font)": "補助行のフォント（読み込めない場合はメインフォント）",
		"Directory of maker logos named <maker>.<ext>":           "メーカーロゴのディレクトリ（<メーカー>.<拡張子>）",

		// Input and output flags
		"Directory of source photos":                                       "元写真のディレクトリ",
		"Directory for framed photos":                                      "現像した写真の出力先ディレクトリ",
		"Output format (jpeg or png)":                                      "出力形式（jpeg または png）",
		"JPEG quality (1-100, default: 90)":                                "JPEG品質（1-100、デフォルト: 90）",
		"Do not rotate photos according to their EXIF orientation":         "EXIFの向き情報による回転を行わない",
		"Number of parallel workers (default: number of CPUs)":             "並列ワーカー数（デフォルト: CPU数）",
		"Write a run summary to file (JSON for .json, Markdown otherwise)": "実行サマリーをファイルに出力（.json ならJSON、それ以外はMarkdown）",

		// Painting flags
		"Painter style (triangular, duel, diagonal, blank)":        "ペインターのスタイル（triangular, duel, diagonal, blank）",
		"Content band position (top, bottom, left, right, middle)": "情報帯の位置（top, bottom, left, right, middle）",
		"Add thin padding around the photo":                        "写真の周囲に細い余白を追加",

		// Server flags
		"Port to listen on (default: 3000)": "待ち受けポート（デフォルト: 3000）",

		// Debug flags
		"Enable debug output":                           "デバッグ出力を有効化",
		"Directory for debug output (default: ./debug)": "デバッグ出力のディレクトリ（デフォルト: ./debug）",

		// Logging flags
		"Log level (debug, info, warn, error, quiet)": "ログレベル（debug, info, warn, error, quiet）",
		"Suppress all log output":                     "全てのログ出力を抑制",

		// Runtime messages
		"input and output directories are required": "入力ディレクトリと出力ディレクトリを指定してください",

		// Summary
		"Development Summary":       "現像サマリー",
		"Generated at":              "生成日時",
		"Settings":                  "設定",
		"Item":                      "項目",
		"Value":                     "値",
		"Input":                     "入力",
		"Output":                    "出力",
		"Painter":                   "ペインター",
		"Position":                  "位置",
		"default":                   "デフォルト",
		"Padding":                   "余白",
		"Format":                    "形式",
		"Quality":                   "品質",
		"Workers":                   "ワーカー数",
		"Photos":                    "写真",
		"No photos were developed.": "現像した写真はありません。",
		"Source":                    "元ファイル",
		"Size":                      "サイズ",
		"Camera":                    "カメラ",
		"Parameters":                "撮影設定",
		"Time":                      "処理時間",
		"Failed":                    "失敗",
		"Totals":                    "合計",
		"Succeeded":                 "成功",
		"Output size":               "出力サイズ",
		"Elapsed":                   "経過時間",
		"yes":                       "はい",
		"no":                        "いいえ",
		"Generated by":              "生成:",
	})
}
