// Package gen produces application artifacts (tailored resume bullets, cover
// letters, upskilling plans, interview questions) through the llm assistant.
// Every function returns usable text even with no backend: degraded output is
// marker-prefixed or replaced by a deterministic offline fallback.
package gen

import (
	"context"
	"fmt"
	"strings"

	"github.com/OneForces/effectivness/internal/extract"
	"github.com/OneForces/effectivness/internal/llm"
)

// Generator builds text artifacts for a JD/resume pair.
type Generator struct {
	assistant *llm.Assistant
}

// New creates a Generator over an assistant.
func New(assistant *llm.Assistant) *Generator {
	return &Generator{assistant: assistant}
}

// TailoredResume rewrites a resume toward a JD: key skills plus STAR bullets
// with metrics.
func (g *Generator) TailoredResume(ctx context.Context, resume, jd string) string {
	system := "Карьерный консультант. Стиль STAR, буллеты."
	prompt := fmt.Sprintf(`Исходное резюме:
%s

Вакансия:
%s

Сформируй: 1) 3 ключевых навыка; 2) 5–7 буллетов STAR с метриками.`, resume, jd)
	return g.assistant.Generate(ctx, system, prompt, llm.Options{Temperature: 0.25, MaxTokens: 900})
}

// CoverLetter writes a short cover letter referencing concrete JD overlaps.
func (g *Generator) CoverLetter(ctx context.Context, resume, jd string) string {
	system := "Копирайтер. 170–220 слов, конкретика."
	prompt := fmt.Sprintf(`Сгенерируй сопроводительное письмо под вакансию, сошлись на 3–4 совпадения с JD и 1 кейс из резюме.
Резюме: %s
JD: %s`, resume, jd)
	return g.assistant.Generate(ctx, system, prompt, llm.Options{Temperature: 0.25, MaxTokens: 600})
}

// Starify rewrites raw experience text into 3–5 STAR bullets.
func (g *Generator) Starify(ctx context.Context, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "— нет входного текста —"
	}
	system := "Ты карьерный редактор резюме. Формируешь краткие, сильные, конкретные буллеты."
	prompt := fmt.Sprintf(`Преобразуй опыт ниже в 3–5 кратких STAR-буллетов на русском.
Требования:
- 1 строка на буллет
- Начинай с сильного глагола (Достиг, Внедрил, Снизил, Ускорил…)
- Укажи метрики/цифры, если возможно
- Фокус на результате и вкладе

Текст опыта:
<<<
%s
>>>`, raw)
	return g.assistant.Generate(ctx, system, prompt, llm.Options{Temperature: 0.4, MaxTokens: 400})
}

// SevenDayPlan builds a 7-day upskilling plan around the detected gaps. When
// generation is degraded the deterministic offline table is returned instead,
// so the caller always gets a complete plan.
func (g *Generator) SevenDayPlan(ctx context.Context, gaps []string, roleHint string) string {
	role := roleHint
	if role == "" {
		role = "под JD"
	}
	gapsTxt := "нет явных пробелов"
	if len(gaps) > 0 {
		shown := gaps
		if len(shown) > 6 {
			shown = shown[:6]
		}
		gapsTxt = strings.Join(shown, ", ")
	}

	system := "Ты ментор по развитию навыков. Всегда отвечай НА РУССКОМ ЯЗЫКЕ. " +
		"Составь практичный план на 7 дней: каждая задача ≤ 60 минут, " +
		"на каждый день обязателен проверяемый артефакт (что сдаём) и конкретные ресурсы."
	prompt := fmt.Sprintf(`Цель: роль «%s».
Ключевые пробелы: %s.

СФОРМИРУЙ ТАБЛИЦУ (как обычный текст):
День | Задача (≤60 мин) | Артефакт (что сдаём) | Ресурсы (1–2 ссылки/подсказки)
`, role, gapsTxt)

	out := g.assistant.Generate(ctx, system, prompt, llm.Options{Temperature: 0.25, MaxTokens: 600})
	if llm.IsDegraded(out) {
		return offlinePlan(gaps)
	}
	return out
}

// offlinePlan is the backend-free fallback plan table.
func offlinePlan(gaps []string) string {
	focus := "систематизация текущих навыков"
	first := "основному стеку"
	if len(gaps) > 0 {
		shown := gaps
		if len(shown) > 6 {
			shown = shown[:6]
		}
		focus = strings.Join(shown, ", ")
		first = gaps[0]
	}
	lines := []string{
		"День | Задача (≤60 мин) | Артефакт | Ресурсы",
		"1 | Разбор JD и чек-лист компетенций | checklist.md | вакансия/JD, заметки",
		fmt.Sprintf("2 | Мини-репо под роль (%s) | репозиторий с README | GitHub, шаблон проекта", focus),
		fmt.Sprintf("3 | 1 практическая задача по %s | ноутбук/скрипт | документация/статья", first),
		"4 | Документация/тесты для мини-репо | tests + README обновлены | тесты, md",
		"5 | Подготовка ответов STAR (3–4 кейса) | draft.md | шпаргалка STAR",
		"6 | Мок-интервью (самопроверка) | список вопросов/ответов | вопросы из интервью-модуля",
		"7 | Итоговый пакет (резюме+cover+план) | zip-пакет | команда экспорта",
	}
	return strings.Join(lines, "\n")
}

// fallback interview questions, per JD language.
var (
	fallbackQuestionsRU = []string{
		"Расскажите о проекте и оценке качества?",
		"Какие метрики и почему?",
		"Опишите пайплайн фичеризации.",
		"Что делать при переобучении?",
		"Как проведёте A/B тест?",
	}
	fallbackQuestionsEN = []string{
		"Describe a project and evaluation.",
		"Which metrics and why?",
		"Feature engineering pipeline.",
		"How to handle overfitting?",
		"How to run an A/B test?",
	}
)

// InterviewQuestions generates up to n interview questions for a JD. A blank
// JD yields nothing; degraded generation falls back to a static list in the
// JD's language.
func (g *Generator) InterviewQuestions(ctx context.Context, jd string, n int) []string {
	if strings.TrimSpace(jd) == "" || n <= 0 {
		return nil
	}

	system := "Интервьюер. Краткие вопросы по JD."
	prompt := fmt.Sprintf("Сгенерируй %d вопросов по JD: %s", n, jd)
	out := g.assistant.Generate(ctx, system, prompt, llm.Options{Temperature: 0.25, MaxTokens: 400})

	if !llm.IsDegraded(out) {
		if qs := parseQuestions(out, n); len(qs) > 0 {
			return qs
		}
	}

	fallback := fallbackQuestionsEN
	if extract.DetectLang(jd) == extract.LangRU {
		fallback = fallbackQuestionsRU
	}
	if n < len(fallback) {
		return fallback[:n]
	}
	return fallback
}

// gradingRubric is the scoring guide for interview answers.
const gradingRubric = "Структура (STAR), глубина, метрики/цифры, корректность терминов, ясность. Балл 0-100."

// GradeAnswer scores an interview answer against the rubric.
func (g *Generator) GradeAnswer(ctx context.Context, question, answer string) string {
	system := "Оценщик. Разбор по рубрике и балл 0-100."
	prompt := fmt.Sprintf("Вопрос: %s\nОтвет: %s\nРубрика: %s", question, answer, gradingRubric)
	return g.assistant.Generate(ctx, system, prompt, llm.Options{Temperature: 0.25, MaxTokens: 400})
}

// parseQuestions splits LLM output into clean question lines.
func parseQuestions(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		q := strings.Trim(line, "- •0123456789. \t")
		if q == "" {
			continue
		}
		out = append(out, q)
		if len(out) >= n {
			break
		}
	}
	return out
}
