package extract

// Stop-word sets come in two layers. The general lists carry the function
// words of each language (pronouns, prepositions, auxiliaries, weak verbs)
// so the ranker never surfaces "we", "are" or "используем" as skills. The
// domain lists then drop vacancy boilerplate ("team", "experience",
// "требования") that is real vocabulary but never an actual skill.

var stopCommon = map[string]struct{}{
	"-": {}, "+": {}, "#": {}, ".": {}, ",": {}, ";": {}, ":": {},
	"/": {}, "\\": {}, "|": {}, "&": {},
	"etc": {}, "etc.": {}, "and": {}, "or": {}, "vs": {}, "plus": {},
	"junior": {}, "middle": {}, "senior": {}, "lead": {}, "jr": {}, "sr": {},
	"stack": {}, "project": {}, "product": {}, "team": {},
}

var stopGeneralEN = map[string]struct{}{
	"about": {}, "above": {}, "across": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "almost": {}, "along": {}, "already": {},
	"also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"an": {}, "another": {}, "any": {}, "anyone": {}, "anything": {},
	"are": {}, "around": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "build": {}, "building": {},
	"builds": {}, "built": {}, "but": {}, "by": {}, "can": {},
	"cannot": {}, "could": {}, "daily": {}, "day": {}, "days": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {},
	"down": {}, "during": {}, "each": {}, "either": {}, "else": {},
	"enough": {}, "even": {}, "ever": {}, "every": {}, "everyone": {},
	"everything": {}, "everywhere": {}, "few": {}, "find": {}, "first": {},
	"for": {}, "from": {}, "further": {}, "get": {}, "gets": {},
	"getting": {}, "give": {}, "given": {}, "good": {}, "got": {},
	"great": {}, "had": {}, "has": {}, "have": {}, "having": {},
	"he": {}, "her": {}, "here": {}, "hers": {}, "him": {},
	"his": {}, "how": {}, "however": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "itself": {},
	"just": {}, "keep": {}, "know": {}, "known": {}, "knows": {},
	"last": {}, "less": {}, "let": {}, "like": {}, "likely": {},
	"long": {}, "looking": {}, "made": {}, "maintain": {}, "maintained": {},
	"maintaining": {}, "make": {}, "makes": {}, "making": {}, "mandatory": {},
	"many": {}, "may": {}, "maybe": {}, "me": {}, "might": {},
	"more": {}, "most": {}, "much": {}, "must": {}, "my": {},
	"need": {}, "needed": {}, "needs": {}, "never": {}, "new": {},
	"next": {}, "no": {}, "nor": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "often": {}, "on": {}, "once": {},
	"one": {}, "only": {}, "onto": {}, "other": {}, "others": {},
	"our": {}, "ours": {}, "out": {}, "over": {}, "own": {},
	"per": {}, "perhaps": {}, "please": {}, "preferred": {}, "put": {},
	"rather": {}, "really": {}, "required": {}, "said": {}, "same": {},
	"say": {}, "see": {}, "seen": {}, "several": {}, "she": {},
	"should": {}, "since": {}, "so": {}, "some": {}, "someone": {},
	"something": {}, "still": {}, "such": {}, "take": {}, "takes": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "thus": {}, "to": {},
	"together": {}, "too": {}, "toward": {}, "towards": {}, "under": {},
	"until": {}, "up": {}, "upon": {}, "us": {}, "use": {},
	"used": {}, "uses": {}, "using": {}, "very": {}, "want": {},
	"wants": {}, "was": {}, "way": {}, "we": {}, "well": {},
	"went": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"whether": {}, "which": {}, "while": {}, "who": {}, "whom": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "worked": {}, "working": {}, "would": {}, "year": {},
	"years": {}, "yet": {}, "you": {}, "your": {}, "yours": {},
}

var stopGeneralRU = map[string]struct{}{
	"без": {}, "более": {}, "будем": {}, "будет": {}, "будут": {},
	"бы": {}, "был": {}, "была": {}, "были": {},
	"было": {}, "быть": {}, "вам": {}, "вас": {}, "ваш": {},
	"ваша": {}, "ваши": {}, "во": {}, "вы": {}, "все": {},
	"всё": {}, "где": {}, "года": {}, "год": {}, "два": {},
	"день": {}, "дня": {}, "дней": {}, "для": {}, "до": {},
	"другие": {}, "другой": {}, "его": {}, "ежедневно": {}, "её": {},
	"еще": {}, "ещё": {}, "же": {}, "за": {}, "здесь": {},
	"из": {}, "или": {}, "им": {}, "имеет": {}, "иметь": {},
	"их": {}, "как": {}, "каждый": {}, "каждая": {}, "когда": {},
	"ко": {}, "кто": {}, "который": {}, "которая": {}, "которые": {},
	"которых": {}, "лет": {}, "ли": {}, "любой": {}, "менее": {},
	"между": {}, "мне": {}, "многие": {}, "много": {}, "можно": {},
	"мы": {}, "на": {}, "надо": {}, "нам": {}, "нас": {},
	"наш": {}, "наша": {}, "наши": {}, "не": {}, "необходим": {},
	"необходимо": {}, "нет": {}, "них": {}, "но": {}, "нужно": {},
	"обязателен": {}, "обязательна": {}, "обязательно": {}, "один": {}, "одна": {},
	"одно": {}, "он": {}, "она": {}, "они": {}, "оно": {},
	"от": {}, "очень": {}, "перед": {}, "по": {}, "после": {},
	"при": {}, "свой": {}, "своя": {}, "свои": {}, "своё": {},
	"со": {}, "строго": {}, "та": {}, "так": {}, "также": {},
	"там": {}, "те": {}, "теперь": {}, "то": {}, "того": {},
	"тоже": {}, "только": {}, "тот": {}, "требуется": {}, "три": {},
	"тут": {}, "ты": {}, "уже": {}, "уметь": {}, "через": {},
	"чем": {}, "что": {}, "чтобы": {}, "эта": {}, "эти": {},
	"это": {}, "этот": {}, "используем": {}, "используете": {}, "использование": {},
	"использовать": {}, "используются": {},
}

var stopRU = map[string]struct{}{
	"опыт": {}, "задачи": {}, "обязанности": {}, "обязанность": {},
	"требования": {}, "требование": {},
	"ответственность": {}, "ответственности": {}, "умение": {},
	"навыки": {}, "навык": {},
	"работа": {}, "работать": {}, "команда": {}, "команды": {},
	"продукт": {}, "проекты": {}, "проект": {},
	"офис": {}, "гибкий": {}, "формат": {}, "условия": {},
	"возможность": {}, "участие": {},
}

var stopEN = map[string]struct{}{
	"experience": {}, "responsibility": {}, "responsibilities": {},
	"requirements": {}, "requirement": {}, "skills": {}, "skill": {},
	"ability": {}, "team": {}, "product": {}, "project": {},
	"work": {}, "office": {}, "flexible": {}, "format": {},
	"conditions": {}, "opportunity": {}, "participation": {}, "role": {},
}

// isStopWord reports whether a normalized token is noise for the given
// language: a function word of the language or domain boilerplate.
func isStopWord(token string, lang Lang) bool {
	if _, ok := stopCommon[token]; ok {
		return true
	}
	switch lang {
	case LangRU:
		if _, ok := stopGeneralRU[token]; ok {
			return true
		}
		_, ok := stopRU[token]
		return ok
	default:
		if _, ok := stopGeneralEN[token]; ok {
			return true
		}
		_, ok := stopEN[token]
		return ok
	}
}
