// Package highlight selects tokenizers and resolves token styles.
//
// It wraps chroma for lexing and theming and enry for content-based language
// detection. Lexer selection tries the filename first, then the file content;
// theme resolution never misses: token kinds a theme does not mention inherit
// the theme's plain-text entry, and an unset color resolves to black.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	enry "github.com/go-enry/go-enry/v2"

	"github.com/sourcebook/sourcebook/pkg/errors"
)

// ForFile returns the lexer used to tokenize the given file.
//
// Selection order:
//  1. Filename match (extension-based, chroma's registry)
//  2. Content-based language detection (enry), mapped back to a chroma lexer
//  3. chroma's own content analysis
//
// The returned lexer is coalesced so adjacent tokens of the same kind arrive
// merged. Failing all three strategies is a per-file error; the caller
// substitutes an error page and moves on.
func ForFile(path, content string) (chroma.Lexer, error) {
	lexer := lexers.Match(path)

	if lexer == nil {
		if lang := enry.GetLanguage(path, []byte(content)); lang != "" {
			lexer = lexers.Get(lang)
		}
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		return nil, errors.New(errors.ErrCodeLexerNotFound, "no lexer matches %s", path)
	}

	return chroma.Coalesce(lexer), nil
}

// Tokenize runs the lexer over content and returns the flat token sequence.
// Concatenating the token values reproduces content exactly.
func Tokenize(lexer chroma.Lexer, content string) ([]chroma.Token, error) {
	it, err := lexer.Tokenise(nil, content)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTokenizeFailed, err, "tokenizing with %s", lexer.Config().Name)
	}
	return it.Tokens(), nil
}

// LexerNames returns the names of all registered lexers, sorted.
func LexerNames() []string {
	return lexers.Names(false)
}
