package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator 提供响应消息的双语（英语/孟加拉语）支持
type Translator struct {
	bundle *i18n.Bundle
}

// 固定的消息表，键与接口契约一致
var englishMessages = []*i18n.Message{
	{ID: "welcome", Other: "Welcome to SafeTrack"},
	{ID: "emergency_alert", Other: "Emergency Alert"},
	{ID: "profile_updated", Other: "Profile updated successfully"},
	{ID: "alert_created", Other: "Emergency alert created successfully"},
	{ID: "alert_updated", Other: "Alert updated successfully"},
	{ID: "invalid_credentials", Other: "Invalid credentials"},
	{ID: "user_exists", Other: "User already exists"},
	{ID: "user_registered", Other: "User registered successfully"},
	{ID: "login_successful", Other: "Login successful"},
}

var bengaliMessages = []*i18n.Message{
	{ID: "welcome", Other: "SafeTrack এ স্বাগতম"},
	{ID: "emergency_alert", Other: "জরুরি সতর্কতা"},
	{ID: "profile_updated", Other: "প্রোফাইল সফলভাবে আপডেট হয়েছে"},
	{ID: "alert_created", Other: "জরুরি সতর্কতা সফলভাবে তৈরি হয়েছে"},
	{ID: "alert_updated", Other: "সতর্কতা সফলভাবে আপডেট হয়েছে"},
	{ID: "invalid_credentials", Other: "অবৈধ পরিচয়পত্র"},
	{ID: "user_exists", Other: "ব্যবহারকারী ইতিমধ্যে বিদ্যমান"},
	{ID: "user_registered", Other: "ব্যবহারকারী সফলভাবে নিবন্ধিত হয়েছে"},
	{ID: "login_successful", Other: "সফলভাবে লগইন হয়েছে"},
}

// NewTranslator 初始化双语翻译器，消息表内置，无需外部语言文件
func NewTranslator() *Translator {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, englishMessages...); err != nil {
		panic(err)
	}
	if err := bundle.AddMessages(language.Bengali, bengaliMessages...); err != nil {
		panic(err)
	}
	return &Translator{bundle: bundle}
}

// T 获取指定语言的翻译文本，未知的键返回键名本身
func (t *Translator) T(lang, key string) string {
	localizer := i18n.NewLocalizer(t.bundle, lang)
	translation, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return translation
}
