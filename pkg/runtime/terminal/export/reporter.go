package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/datasync"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
)

const importTmpl = `Batch import response: SuccessCount={{toInt32 .SuccessCount}} FailedCount={{toInt32 .FailedCount}}
{{range .FailedFindings}}  failed {{toString .Id}}: {{toString .ErrorCode}} {{toString .ErrorMessage}}
{{end}}`

const executionTmpl = `Start task execution response: TaskExecutionArn={{toString .TaskExecutionArn}}
`

// Reporter prints raw service responses, without interpreting them
type Reporter struct {
	writer    io.Writer
	importT   *template.Template
	executionT *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcMap := template.FuncMap{
		"toString": aws.ToString,
		"toInt32":  aws.ToInt32,
	}

	return &Reporter{
		writer:    writer,
		importT:   template.Must(template.New("import").Funcs(funcMap).Parse(importTmpl)),
		executionT: template.Must(template.New("execution").Funcs(funcMap).Parse(executionTmpl)),
	}
}

func (r *Reporter) HandleImport(out *securityhub.BatchImportFindingsOutput) error {
	if out == nil {
		return fmt.Errorf("empty batch import response")
	}
	return r.importT.Execute(r.writer, out)
}

func (r *Reporter) HandleExecution(out *datasync.StartTaskExecutionOutput) error {
	if out == nil {
		return fmt.Errorf("empty start task execution response")
	}
	return r.executionT.Execute(r.writer, out)
}
