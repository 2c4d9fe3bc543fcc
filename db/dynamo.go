package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Dynamo implements Store against a DynamoDB table.
type Dynamo struct {
	client *dynamodb.Client
	table  string
}

// New connects a Dynamo store to the given table. An empty endpointURL
// uses the regional AWS endpoint; a non-empty one targets a local
// DynamoDB instance.
func New(ctx context.Context, table, region, endpointURL string) (*Dynamo, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})

	return &Dynamo{client: client, table: table}, nil
}

// GetMetric performs a point lookup on the (period, metric_type) key.
func (d *Dynamo) GetMetric(ctx context.Context, key MetricKey) (*MetricRecord, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]types.AttributeValue{
			"period":      &types.AttributeValueMemberS{Value: key.Period},
			"metric_type": &types.AttributeValueMemberS{Value: key.MetricType},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", key.Period, key.MetricType, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	return recordFromItem(out.Item), nil
}

// ScanMetrics reads the whole table. The dataset is one record per
// (month, metric) pair, so the scan stays small.
func (d *Dynamo) ScanMetrics(ctx context.Context) ([]MetricRecord, error) {
	records := make([]MetricRecord, 0)

	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{
		TableName: aws.String(d.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", d.table, err)
		}
		for _, item := range page.Items {
			records = append(records, *recordFromItem(item))
		}
	}

	return records, nil
}

// Status checks table reachability for the health probe.
func (d *Dynamo) Status(ctx context.Context) error {
	out, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.table),
	})
	if err != nil {
		return fmt.Errorf("describe %s: %w", d.table, err)
	}
	if out.Table.TableStatus != types.TableStatusActive {
		return fmt.Errorf("table %s is %s", d.table, out.Table.TableStatus)
	}
	return nil
}

func recordFromItem(item map[string]types.AttributeValue) *MetricRecord {
	rec := &MetricRecord{Attrs: make(map[string]any, len(item))}
	for name, attr := range item {
		rec.Attrs[name] = decodeAttr(attr)
	}
	if period, ok := rec.Attrs["period"].(string); ok {
		rec.Period = period
	}
	if metricType, ok := rec.Attrs["metric_type"].(string); ok {
		rec.MetricType = metricType
	}
	return rec
}
