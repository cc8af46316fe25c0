package endpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplesDoc = `{
  "endPoints": [
    {
      "path": "/word.{format}/{word}/examples",
      "operations": [
        {
          "httpMethod": "get",
          "summary": "Returns examples for a word",
          "parameters": [
            {"name": "word", "paramType": "path", "required": true},
            {"name": "limit", "paramType": "query", "allowableValues": "5,10"},
            {"name": "sourceDictionary", "paramType": "query", "allowableValues": {"valueType": "LIST", "values": ["ahd", "century"]}},
            {"paramType": "body", "required": true}
          ]
        }
      ]
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(examplesDoc))
	require.NoError(t, err)

	ops, err := doc.Operations()
	require.NoError(t, err)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.Equal(t, "/word.{format}/{word}/examples", op.Path)
	assert.Equal(t, GET, op.Verb)
	assert.Equal(t, []string{"format", "word"}, op.Placeholders())

	limit, ok := op.Param("limit")
	require.True(t, ok)
	assert.Equal(t, LocationQuery, limit.Location)
	assert.Equal(t, []string{"5", "10"}, limit.AllowedValues)

	src, _ := op.Param("sourceDictionary")
	assert.Equal(t, []string{"ahd", "century"}, src.AllowedValues)

	body, ok := op.BodyParam()
	require.True(t, ok)
	assert.Equal(t, DefaultBodyName, body.Name)
	assert.Equal(t, []string{"body"}, op.RequiredNames())
}

func TestParseYAML(t *testing.T) {
	src := `
endPoints:
  - path: /wordList.{format}/{permalink}
    operations:
      - httpMethod: DELETE
        summary: Deletes an existing WordList
        parameters:
          - name: permalink
            paramType: path
            required: true
          - name: auth_token
            paramType: header
            required: true
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	ops, err := doc.Operations()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, DELETE, ops[0].Verb)
	assert.Equal(t, []string{"auth_token"}, ops[0].RequiredNames())
	assert.Len(t, ops[0].PathParams(), 1)
	assert.Len(t, ops[0].OtherParams(), 1)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "empty",
			doc:     "   ",
			wantErr: "empty document",
		},
		{
			name:    "unknown http method",
			doc:     `{"endPoints":[{"path":"/a","operations":[{"httpMethod":"PATCH","parameters":[]}]}]}`,
			wantErr: "HTTPMethod must be one of",
		},
		{
			name:    "unknown param type",
			doc:     `{"endPoints":[{"path":"/a","operations":[{"httpMethod":"GET","parameters":[{"name":"x","paramType":"cookie"}]}]}]}`,
			wantErr: "ParamType must be one of",
		},
		{
			name:    "relative path",
			doc:     `{"endPoints":[{"path":"a","operations":[{"httpMethod":"GET","parameters":[]}]}]}`,
			wantErr: "must start with",
		},
		{
			name:    "malformed json",
			doc:     `{"endPoints":`,
			wantErr: "parsing json document",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestOperationsRejectsUndeclaredPathParam(t *testing.T) {
	doc, err := Parse([]byte(`{"endPoints":[{"path":"/word.{format}/{word}","operations":[{"httpMethod":"GET","parameters":[{"name":"wordId","paramType":"path"}]}]}]}`))
	require.NoError(t, err)

	_, err = doc.Operations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `path parameter "wordId" not in path template`)
}

func TestOperationsRejectsDuplicateParam(t *testing.T) {
	doc, err := Parse([]byte(`{"endPoints":[{"path":"/a","operations":[{"httpMethod":"GET","parameters":[{"name":"x","paramType":"query"},{"name":"x","paramType":"header"}]}]}]}`))
	require.NoError(t, err)

	_, err = doc.Operations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared twice")
}

func TestParseVerb(t *testing.T) {
	v, err := ParseVerb(" post ")
	require.NoError(t, err)
	assert.Equal(t, POST, v)

	_, err = ParseVerb("HEAD")
	assert.Error(t, err)
}

func TestParameterAllows(t *testing.T) {
	p := Parameter{Name: "sortOrder", AllowedValues: []string{"asc", "desc"}}
	assert.True(t, p.Allows("asc"))
	assert.False(t, p.Allows("up"))
	assert.True(t, Parameter{Name: "free"}.Allows("anything"))
}

func TestOperationDoc(t *testing.T) {
	op := Operation{
		Path:    "/word.{format}/{word}/examples",
		Verb:    GET,
		Summary: "Returns examples for a word",
		Parameters: []Parameter{
			{Name: "word", Location: LocationPath, Required: true},
			{Name: "limit", Location: LocationQuery, AllowedValues: []string{"5", "10"}, Description: "Maximum results"},
		},
	}
	doc := op.Doc()
	assert.Contains(t, doc, "Returns examples for a word\nGET /word.{format}/{word}/examples\n")
	assert.Contains(t, doc, "Path Parameters:\n  word (required)\n")
	assert.Contains(t, doc, "Other Parameters:\n  limit [5|10]  Maximum results\n")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(examplesDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("endPoints:\n  - path: /words.{format}/randomWord\n    operations:\n      - httpMethod: GET\n        parameters: []\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	ops, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "/words.{format}/randomWord", ops[0].Path, "files load in name order")
	assert.Equal(t, "/word.{format}/{word}/examples", ops[1].Path)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no descriptor documents")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestBundled(t *testing.T) {
	ops, err := Bundled()
	require.NoError(t, err)

	paths := make(map[string]bool)
	for _, op := range ops {
		paths[string(op.Verb)+" "+op.Path] = true
	}
	for _, want := range []string{
		"GET /word.{format}/{word}/examples",
		"GET /account.{format}/authenticate/{username}",
		"DELETE /wordList.{format}/{permalink}",
		"GET /words.{format}/search",
		"GET /user.{format}/{username}/wordOfTheDayList/{permalink}",
	} {
		assert.True(t, paths[want], "bundled descriptors missing %s", want)
	}
}
