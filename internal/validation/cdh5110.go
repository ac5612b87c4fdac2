package validation

import "github.com/edvin/cdhplugin/internal/model"

const gib = 1 << 30

func cdh5110Rules() *RuleSet {
	one := Range{Min: 1, Max: 1}
	atMostOne := Range{Min: 0, Max: 1}

	return &RuleSet{
		Version: "5.11.0",
		Services: []Service{
			{Name: "CLOUDERA", Processes: []string{model.ProcessClouderaManager}},
			{Name: "HDFS", Processes: []string{
				model.ProcessNameNode, model.ProcessDataNode,
				model.ProcessSecondaryNameNode, model.ProcessJournalNode,
			}},
			{Name: "YARN", Processes: []string{
				model.ProcessResourceManager, model.ProcessNodeManager,
				model.ProcessJobHistory, model.ProcessStandbyRM,
			}},
			{Name: "OOZIE", Processes: []string{model.ProcessOozieServer}},
			{Name: "HIVE", Processes: []string{
				model.ProcessHiveServer2, model.ProcessHiveMetastore, model.ProcessHiveWebHCat,
			}},
			{Name: "HUE", Processes: []string{model.ProcessHueServer}},
			{Name: "SPARK_ON_YARN", Processes: []string{model.ProcessSparkHistoryServer}},
			{Name: "ZOOKEEPER", Processes: []string{model.ProcessZooKeeperServer}},
			{Name: "HBASE", Processes: []string{model.ProcessHBaseMaster, model.ProcessHBaseRegionServer}},
			{Name: "FLUME", Processes: []string{model.ProcessFlumeAgent}},
			{Name: "IMPALA", Processes: []string{
				model.ProcessImpalaCatalogServer, model.ProcessImpalaStateStore, model.ProcessImpalaDaemon,
			}},
			{Name: "KS_INDEXER", Processes: []string{model.ProcessHBaseIndexer}},
			{Name: "SOLR", Processes: []string{model.ProcessSolrServer}},
			{Name: "SQOOP", Processes: []string{model.ProcessSqoopServer}},
			{Name: "SENTRY", Processes: []string{model.ProcessSentryServer}},
			{Name: "KMS", Processes: []string{model.ProcessKMS}},
			{Name: "KAFKA", Processes: []string{model.ProcessKafkaBroker}},
			{Name: "YARN_GATEWAY", Processes: []string{}},
			{Name: "HDFS_GATEWAY", Processes: []string{model.ProcessHDFSGateway}},
		},

		Counts: []CountRule{
			{Process: model.ProcessClouderaManager, Range: one},
			{Process: model.ProcessNameNode, Range: one},
			{Process: model.ProcessSecondaryNameNode, Range: one},
			{
				Process: model.ProcessDataNode,
				Range:   Range{Min: 3, Max: Unbounded},
				MinFrom: &ConfigKey{Service: model.ConfigServiceHDFS, Name: model.ConfigDFSReplication},
				Reason:  "number of datanodes must be not less than dfs_replication",
			},
			{Process: model.ProcessResourceManager, Range: atMostOne},
			{Process: model.ProcessJobHistory, Range: atMostOne},
			{
				Process:     model.ProcessJournalNode,
				Range:       Range{Min: 3, Max: Unbounded, Odd: true},
				WhenPresent: true,
				Reason:      "journal nodes must form an odd quorum of at least 3",
			},
			{Process: model.ProcessStandbyRM, Range: atMostOne},
			{Process: model.ProcessOozieServer, Range: atMostOne},
			{Process: model.ProcessHueServer, Range: atMostOne},
			{Process: model.ProcessSparkHistoryServer, Range: atMostOne},
			{Process: model.ProcessSentryServer, Range: atMostOne},
			{Process: model.ProcessSqoopServer, Range: atMostOne},
			{Process: model.ProcessImpalaCatalogServer, Range: atMostOne},
			{Process: model.ProcessImpalaStateStore, Range: atMostOne},
			{Process: model.ProcessKMS, Range: atMostOne},
		},

		Volumes: []VolumeRule{{
			Process:         model.ProcessDataNode,
			Reserved:        ConfigKey{Service: model.ConfigServiceDataNode, Name: model.ConfigDUReserved},
			DefaultReserved: 10 * gib,
		}},

		Dependencies: []DependencyRule{
			{Dependent: model.ProcessResourceManager, Required: model.ProcessJobHistory},
			{Dependent: model.ProcessNodeManager, Required: model.ProcessResourceManager},

			{Dependent: model.ProcessJournalNode, Required: model.ProcessZooKeeperServer, RequiredBy: "HDFS HA"},
			{Dependent: model.ProcessStandbyRM, Required: model.ProcessResourceManager, RequiredBy: "RM HA"},
			{Dependent: model.ProcessStandbyRM, Required: model.ProcessZooKeeperServer, RequiredBy: "RM HA"},

			{Dependent: model.ProcessOozieServer, Required: model.ProcessDataNode},
			{Dependent: model.ProcessOozieServer, Required: model.ProcessNodeManager},
			{Dependent: model.ProcessOozieServer, Required: model.ProcessJobHistory},

			{Dependent: model.ProcessHiveMetastore, Required: model.ProcessResourceManager},
			{Dependent: model.ProcessHiveMetastore, Required: model.ProcessHiveServer2},
			{Dependent: model.ProcessHiveServer2, Required: model.ProcessHiveMetastore},
			{Dependent: model.ProcessHiveWebHCat, Required: model.ProcessHiveMetastore},

			{Dependent: model.ProcessSparkHistoryServer, Required: model.ProcessResourceManager},
			{Dependent: model.ProcessHueServer, Required: model.ProcessOozieServer},
			{Dependent: model.ProcessHueServer, Required: model.ProcessHiveMetastore},

			// HBase master and region servers require each other; ZooKeeper is
			// checked first so a bare master reports the missing quorum.
			{Dependent: model.ProcessHBaseMaster, Required: model.ProcessZooKeeperServer, RequiredBy: "HBASE"},
			{Dependent: model.ProcessHBaseMaster, Required: model.ProcessHBaseRegionServer, AsCount: true},
			{Dependent: model.ProcessHBaseRegionServer, Required: model.ProcessHBaseMaster, AsCount: true},

			{Dependent: model.ProcessFlumeAgent, Required: model.ProcessDataNode},
			{Dependent: model.ProcessSentryServer, Required: model.ProcessDataNode},
			{Dependent: model.ProcessSentryServer, Required: model.ProcessZooKeeperServer},
			{Dependent: model.ProcessSolrServer, Required: model.ProcessDataNode},
			{Dependent: model.ProcessSolrServer, Required: model.ProcessZooKeeperServer},
			{Dependent: model.ProcessSqoopServer, Required: model.ProcessDataNode},
			{Dependent: model.ProcessSqoopServer, Required: model.ProcessNodeManager},
			{Dependent: model.ProcessSqoopServer, Required: model.ProcessJobHistory},

			{Dependent: model.ProcessHBaseIndexer, Required: model.ProcessDataNode},
			{Dependent: model.ProcessHBaseIndexer, Required: model.ProcessZooKeeperServer},
			{Dependent: model.ProcessHBaseIndexer, Required: model.ProcessSolrServer},
			{Dependent: model.ProcessHBaseIndexer, Required: model.ProcessHBaseMaster},

			{Dependent: model.ProcessImpalaCatalogServer, Required: model.ProcessImpalaStateStore, RequiredBy: "IMPALA"},
			{Dependent: model.ProcessImpalaCatalogServer, Required: model.ProcessDataNode, RequiredBy: "IMPALA"},
			{Dependent: model.ProcessImpalaCatalogServer, Required: model.ProcessHiveMetastore, RequiredBy: "IMPALA"},
		},

		AntiAffinity: []AntiAffinityRule{
			{
				Trigger:   model.ProcessJournalNode,
				Processes: []string{model.ProcessSecondaryNameNode, model.ProcessNameNode},
				Kind:      HANameNode,
			},
			{
				Trigger:   model.ProcessStandbyRM,
				Processes: []string{model.ProcessResourceManager, model.ProcessStandbyRM},
				Kind:      HAResourceManager,
			},
		},
		RequireAntiAffinity: ConfigKey{Service: model.ConfigServiceGeneral, Name: model.ConfigRequireAntiAffinity},
		DefaultAntiAffinity: true,

		Colocations: []ColocationRule{{
			Triggers:  []string{model.ProcessImpalaCatalogServer, model.ProcessImpalaDaemon},
			Processes: []string{model.ProcessDataNode, model.ProcessImpalaDaemon},
			Reason:    "IMPALAD must be installed on every HDFS_DATANODE",
		}},

		Scalable: []string{model.ProcessDataNode, model.ProcessHDFSGateway, model.ProcessNodeManager},
		ScalingMasters: []ScalingMasterRule{
			{Process: model.ProcessNodeManager, Master: model.ProcessResourceManager},
			{Process: model.ProcessDataNode, Master: model.ProcessNameNode},
		},
		ReplicatedProcess: model.ProcessDataNode,
		Replication:       ConfigKey{Service: model.ConfigServiceHDFS, Name: model.ConfigDFSReplication},
	}
}
