// Package main implements the scheduled rebuild worker. An EventBridge
// schedule invokes it to rebuild every circle, refreshing warm scores
// as recency decay moves them; run outside Lambda it executes one
// rebuild pass and exits.
package main

import (
	"context"
	"log"
	"os"
	"time"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/services"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/di"
)

const metricNamespace = "AccessEngine/Rebuild"

var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	if err := container.Start(ctx); err != nil {
		log.Fatalf("Failed to start container: %v", err)
	}
}

func runRebuild(ctx context.Context, reason string) error {
	started := time.Now()

	var result interface{}
	err := container.Tracer.TraceRebuild(ctx, reason, func(ctx context.Context) error {
		var sendErr error
		result, sendErr = container.CommandBus.Send(ctx, commands.RebuildAllCommand{Reason: reason})
		return sendErr
	})
	if err != nil {
		return err
	}

	results, ok := result.([]*services.RebuildResult)
	if !ok {
		container.Logger.Warn("Unexpected rebuild result shape")
		return nil
	}

	var rebuilt, unchanged, pruned, nodes int
	for _, r := range results {
		if r.Unchanged {
			unchanged++
		} else {
			rebuilt++
		}
		pruned += r.PrunedCount
		nodes += r.NodeCount
	}
	elapsed := time.Since(started)

	container.Logger.Info("Rebuild pass complete",
		zap.String("reason", reason),
		zap.Int("rebuilt", rebuilt),
		zap.Int("unchanged", unchanged),
		zap.Int("pruned_members", pruned),
		zap.Int("total_nodes", nodes),
		zap.Duration("elapsed", elapsed),
	)

	if container.Config.EnableMetrics {
		publishMetrics(ctx, rebuilt, unchanged, pruned, elapsed)
	}
	return nil
}

// publishMetrics reports the pass to CloudWatch. Failures are logged
// and swallowed; the rebuild already succeeded.
func publishMetrics(ctx context.Context, rebuilt, unchanged, pruned int, elapsed time.Duration) {
	now := time.Now()
	_, err := container.CloudWatch.PutMetricData(ctx, &awscloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricNamespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: aws.String("CirclesRebuilt"),
				Value:      aws.Float64(float64(rebuilt)),
				Unit:       cwtypes.StandardUnitCount,
				Timestamp:  aws.Time(now),
			},
			{
				MetricName: aws.String("CirclesUnchanged"),
				Value:      aws.Float64(float64(unchanged)),
				Unit:       cwtypes.StandardUnitCount,
				Timestamp:  aws.Time(now),
			},
			{
				MetricName: aws.String("MembersPruned"),
				Value:      aws.Float64(float64(pruned)),
				Unit:       cwtypes.StandardUnitCount,
				Timestamp:  aws.Time(now),
			},
			{
				MetricName: aws.String("RebuildPassDuration"),
				Value:      aws.Float64(elapsed.Seconds()),
				Unit:       cwtypes.StandardUnitSeconds,
				Timestamp:  aws.Time(now),
			},
		},
	})
	if err != nil {
		container.Logger.Warn("Failed to publish rebuild metrics", zap.Error(err))
	}
}

func handler(ctx context.Context, event awsevents.CloudWatchEvent) error {
	reason := "scheduled"
	if event.DetailType != "" && event.DetailType != "Scheduled Event" {
		reason = event.DetailType
	}
	return runRebuild(ctx, reason)
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(handler)
		return
	}

	// One local pass, bounded the way a schedule tick would be
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := runRebuild(ctx, "manual"); err != nil {
		container.Logger.Fatal("Rebuild pass failed", zap.Error(err))
	}
	if err := container.Shutdown(); err != nil {
		log.Printf("Container shutdown error: %v", err)
	}
}
