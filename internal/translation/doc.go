// Package translation defines the provider contract shared by every
// translation backend, the closed set of provider names, and the backends
// themselves (Codic, ChatGPT, DeepL and Gemini).
package translation
