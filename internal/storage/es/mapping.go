package es

import "github.com/elastic/go-elasticsearch/v8/typedapi/types"

func runsMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":                  types.NewKeywordProperty(),
			"name":                types.NewKeywordProperty(),
			"embedding_model":     types.NewKeywordProperty(),
			"chunk_size_words":    types.NewIntegerNumberProperty(),
			"chunk_overlap_words": types.NewIntegerNumberProperty(),
			"chip_count":          types.NewIntegerNumberProperty(),
			"chip_position":       types.NewKeywordProperty(),
			"total_chunks":        types.NewIntegerNumberProperty(),
			"avg_chunk_words":     types.NewDoubleNumberProperty(),
			"created_at":          types.NewDateProperty(),
		},
	}
}

func resultsMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"run_id":       types.NewKeywordProperty(),
			"query":        types.NewTextProperty(),
			"answer_found": types.NewBooleanProperty(),
			"answer_rank":  types.NewIntegerNumberProperty(),
		},
	}
}
