// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package i18n

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"

	"authelia.com/provider/requestobject/internal/consts"
)

// MessageCatalog declares the interface to get globalized messages
type MessageCatalog interface {
	GetMessage(ID string, tag language.Tag, v ...any) string
	GetLangFromRequest(r *http.Request) language.Tag
}

// GetMessage is a helper func to get the translated message based on
// the message ID and lang. If no matching message is found, it uses
// ID as the message itself.
func GetMessage(c MessageCatalog, id string, tag language.Tag, v ...any) string {
	return GetMessageOrDefault(c, id, tag, id, v...)
}

// GetMessageOrDefault is a helper func to get the translated message based on
// the message ID and lang. If no matching message is found, it returns the
// 'def' message.
func GetMessageOrDefault(c MessageCatalog, id string, tag language.Tag, def string, v ...any) string {
	if c != nil {
		if s := c.GetMessage(id, tag, v...); s != id {
			return s
		}
	}

	return def
}

// GetLangFromRequest is a helper func to get the language tag based on the
// HTTP request and the constructed message catalog.
func GetLangFromRequest(c MessageCatalog, r *http.Request) language.Tag {
	if c != nil {
		return c.GetLangFromRequest(r)
	}

	return language.English
}

// DefaultMessageCatalog is a MessageCatalog backed by an in-memory map of message ID to format string per language.
type DefaultMessageCatalog struct {
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
	tags     []language.Tag
}

// NewDefaultMessageCatalog returns a DefaultMessageCatalog. The first entry of tags is the fallback language.
func NewDefaultMessageCatalog(tags []language.Tag, messages map[language.Tag]map[string]string) *DefaultMessageCatalog {
	if len(tags) == 0 {
		tags = []language.Tag{language.English}
	}

	return &DefaultMessageCatalog{
		messages: messages,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
	}
}

// GetMessage returns the formatted message for the ID and language, or the ID itself if none is registered.
func (c *DefaultMessageCatalog) GetMessage(id string, tag language.Tag, v ...any) string {
	_, index, _ := c.matcher.Match(tag)

	m, ok := c.messages[c.tags[index]]
	if !ok {
		return id
	}

	format, ok := m[id]
	if !ok {
		return id
	}

	if len(v) == 0 {
		return format
	}

	return fmt.Sprintf(format, v...)
}

// GetLangFromRequest negotiates the language using the Accept-Language header.
func (c *DefaultMessageCatalog) GetLangFromRequest(r *http.Request) language.Tag {
	if r == nil {
		return c.tags[0]
	}

	accepted, _, err := language.ParseAcceptLanguage(r.Header.Get(consts.HeaderAcceptLanguage))
	if err != nil || len(accepted) == 0 {
		return c.tags[0]
	}

	_, index, _ := c.matcher.Match(accepted...)

	return c.tags[index]
}

var (
	_ MessageCatalog = (*DefaultMessageCatalog)(nil)
)
