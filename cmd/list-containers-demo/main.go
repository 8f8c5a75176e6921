package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cmtui/internal/docker"
	"cmtui/internal/ui/state"
)

// 不启动 TUI，直接打印表格模型投影后的容器列表，用于排查连接和日志问题

func main() {
	socket := flag.String("socket", docker.DefaultSocketPath, "daemon unix socket")
	logsID := flag.String("logs", "", "print logs of this container id")
	api := flag.Bool("api", false, "read logs through the daemon API instead of files")
	tail := flag.Int("tail", 20, "log lines to print")
	flag.Parse()

	fmt.Printf("=== 容器列表测试 ===\n")
	fmt.Printf("目标地址: %s\n\n", *socket)

	if err := docker.CheckSocketAccess(*socket); err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Println("📡 测试连接...")
	client, err := docker.Dial(ctx, *socket)
	if err != nil {
		log.Fatalf("❌ 无法连接到守护进程: %v\n", err)
	}
	defer client.Close()
	fmt.Println("✅ 连接成功")
	fmt.Println()

	containers, err := client.ListContainers(ctx)
	if err != nil {
		log.Fatalf("❌ 获取容器列表失败: %v\n", err)
	}

	table := state.NewTable(state.SelectByIndex)
	table.Replace(containers)

	fmt.Printf("找到 %d 个容器：\n\n", table.Len())
	if table.Len() == 0 {
		fmt.Println("  (无容器)")
	}
	for i, row := range table.Rows() {
		marker := ""
		if row.Malformed {
			marker = " ⚠"
		}
		id := row.ID
		if len(id) > 12 {
			id = id[:12] // 只显示前12位
		}
		fmt.Printf("%d. %s%s\n", i+1, row.Name, marker)
		fmt.Printf("   ID:     %s\n", id)
		fmt.Printf("   镜像:   %s\n", row.Image)
		fmt.Printf("   状态:   %s\n", row.Status)
		fmt.Println()
	}

	if *logsID == "" {
		return
	}

	var source docker.LogSource = docker.NewFileLogSource("", *tail)
	if *api {
		source = docker.NewAPILogSource(client, *tail)
	}

	fmt.Printf("📜 日志 %s:\n", *logsID)
	text, err := source.ReadLogs(ctx, *logsID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 读取日志失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(text)
}
