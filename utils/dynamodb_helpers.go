package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BuildMergeExpression turns a path->value patch into a DynamoDB SET
// expression with escaped attribute names. Patch keys are dot-separated
// attribute paths (e.g. "matches.<candidateId>"); each segment gets its own
// name placeholder so IDs never leak into the expression text, and only the
// named paths are written. Paths are processed in sorted order so the
// expression is deterministic.
func BuildMergeExpression(patch map[string]interface{}) (string, map[string]string, map[string]types.AttributeValue, error) {
	paths := make([]string, 0, len(patch))
	for path := range patch {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	parts := make([]string, 0, len(paths))

	for i, path := range paths {
		segments := strings.Split(path, ".")
		refs := make([]string, len(segments))
		for j, segment := range segments {
			ref := fmt.Sprintf("#p%d_%d", i, j)
			names[ref] = segment
			refs[j] = ref
		}

		av, err := attributevalue.Marshal(patch[path])
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal value for path '%s': %w", path, err)
		}
		valueRef := fmt.Sprintf(":v%d", i)
		values[valueRef] = av

		parts = append(parts, fmt.Sprintf("%s = %s", strings.Join(refs, "."), valueRef))
	}

	return "SET " + strings.Join(parts, ", "), names, values, nil
}
