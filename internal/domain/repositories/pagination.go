package repositories

// Page é o resultado de uma listagem com paginação por keyset.
// C é o tipo da chave primária da entidade (uuid string ou int64).
//
// O contrato é cursor inclusivo: NextCursor é a primeira chave da próxima
// página e deve ser reenviado literalmente pelo chamador. A consulta busca
// limit+1 linhas ordenadas pela chave; quando sobra uma linha extra ela é
// removida do resultado e sua chave vira o NextCursor.
type Page[T any, C any] struct {
	Data       []T
	NextCursor *C
}

// PageFrom aplica o corte limit+1 sobre as linhas já buscadas.
// key extrai a chave primária de uma linha.
func PageFrom[T any, C any](rows []T, limit int, key func(T) C) Page[T, C] {
	if len(rows) <= limit {
		return Page[T, C]{Data: rows}
	}

	last := key(rows[limit])
	return Page[T, C]{Data: rows[:limit], NextCursor: &last}
}
