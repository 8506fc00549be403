// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":                    "名前",
	"capsules_per_take":       "1回あたりの摂取数",
	"times_of_day":            "摂取タイミング",
	"start_date":              "開始日",
	"end_date":                "終了日",
	"refill_amount":           "補充量",
	"supplement_id":           "サプリメントID",
	"schedule_id":             "スケジュールID",
	"taken_at":                "摂取日",
	"inventory_total":         "在庫数",
	"low_inventory_threshold": "在庫しきい値",
	"recommendation":          "摂取の推奨",
	"source_url":              "情報元URL",
	"source_name":             "情報元",
	"timezone":                "タイムゾーン",
	"date":                    "日付",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// タグごとのメッセージテンプレートを登録するヘルパー
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName, fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("min", "{0}は{1}以上で入力してください。")
	registerTranslation("max", "{0}は{1}以下で入力してください。")
	registerTranslation("uuid", "{0}の形式が正しくありません。")
	registerTranslation("url", "{0}は有効なURL形式ではありません。")
}
